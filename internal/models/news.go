package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Counters tracks engagement totals on a news article.
type Counters struct {
	Views    int64 `bson:"views"    json:"views"`
	Shares   int64 `bson:"shares"   json:"shares"`
	Likes    int64 `bson:"likes"    json:"likes"`
	Comments int64 `bson:"comments" json:"comments"`
}

// News is an article, optionally tied to a celebrity.
type News struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title"         json:"title"`
	Slug        string              `bson:"slug"          json:"slug"`
	Excerpt     string              `bson:"excerpt"       json:"excerpt"`
	Body        string              `bson:"body"          json:"body"`
	CelebrityID *primitive.ObjectID `bson:"celebrityId,omitempty" json:"celebrity,omitempty"`
	Category    string              `bson:"category"      json:"category"`
	CoverImage  string              `bson:"coverImage"    json:"coverImage"`
	Counters    Counters            `bson:"counters"      json:"counters"`
	SEO         SEO                 `bson:"seo"           json:"seo"`
	Publication `bson:",inline"`
	Timestamps  `bson:",inline"`
}
