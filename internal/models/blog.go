package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Blog is an editorial post written in markdown.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title"      json:"title"`
	Slug        string             `bson:"slug"       json:"slug"`
	Excerpt     string             `bson:"excerpt"    json:"excerpt"`
	Body        string             `bson:"body"       json:"body"`
	Category    string             `bson:"category"   json:"category"`
	Tags        []string           `bson:"tags"       json:"tags"`
	Author      string             `bson:"author"     json:"author"`
	CoverImage  string             `bson:"coverImage" json:"coverImage"`
	Views       int64              `bson:"views"      json:"views"`
	SEO         SEO                `bson:"seo"        json:"seo"`
	Publication `bson:",inline"`
	Timestamps  `bson:",inline"`
}
