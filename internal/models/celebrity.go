package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Celebrity is a biographical aggregate: identity and career fields plus
// nested filmography, awards and social links.
type Celebrity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Slug        string             `bson:"slug"          json:"slug"`
	FullName    string             `bson:"fullName"      json:"fullName"`
	Bio         string             `bson:"bio"           json:"bio"`
	BirthDate   *time.Time         `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	BirthPlace  string             `bson:"birthPlace"    json:"birthPlace"`
	Nationality string             `bson:"nationality"   json:"nationality"`
	Professions []string           `bson:"professions"   json:"professions"`
	Movies      []CelebrityMovie   `bson:"movies"        json:"movies"`
	Awards      []Award            `bson:"awards"        json:"awards"`
	SocialMedia SocialMedia        `bson:"socialMedia"   json:"socialMedia"`
	SEO         SEO                `bson:"seo"           json:"seo"`
	Popularity  int                `bson:"popularity"    json:"popularity"`
	Views       int64              `bson:"views"         json:"views"`
	Shares      int64              `bson:"shares"        json:"shares"`
	Publication `bson:",inline"`
	Timestamps  `bson:",inline"`
}

// CelebrityMovie is a filmography entry embedded in a celebrity profile.
type CelebrityMovie struct {
	Title string `bson:"title" json:"title"`
	Year  int    `bson:"year"  json:"year"`
	Role  string `bson:"role"  json:"role"`
}

// Award is an accolade entry embedded in a celebrity profile.
type Award struct {
	Name     string `bson:"name"     json:"name"`
	Year     int    `bson:"year"     json:"year"`
	Category string `bson:"category" json:"category"`
	Won      bool   `bson:"won"      json:"won"`
}

// SocialMedia holds profile links.
type SocialMedia struct {
	Instagram string `bson:"instagram" json:"instagram"`
	Twitter   string `bson:"twitter"   json:"twitter"`
	Facebook  string `bson:"facebook"  json:"facebook"`
	TikTok    string `bson:"tiktok"    json:"tiktok"`
	YouTube   string `bson:"youtube"   json:"youtube"`
}
