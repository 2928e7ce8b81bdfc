package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Outfit categories form a closed enum.
var OutfitCategories = []string{"Red Carpet", "Street Style", "Event", "Casual", "Runway"}

// ValidOutfitCategory reports whether c is a known outfit category.
func ValidOutfitCategory(c string) bool {
	for _, known := range OutfitCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Outfit is a look worn by exactly one celebrity.
type Outfit struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title"         json:"title"`
	Slug        string             `bson:"slug"          json:"slug"`
	CelebrityID primitive.ObjectID `bson:"celebrityId"   json:"celebrity"`
	Images      []string           `bson:"images"        json:"images"`
	Event       string             `bson:"event"         json:"event"`
	Designer    string             `bson:"designer"      json:"designer"`
	Year        int                `bson:"year"          json:"year"`
	Category    string             `bson:"category"      json:"category"`
	Description string             `bson:"description"   json:"description"`
	Tags        []string           `bson:"tags"          json:"tags"`
	SEO         SEO                `bson:"seo"           json:"seo"`
	Views       int64              `bson:"views"         json:"views"`
	Publication `bson:",inline"`
	Timestamps  `bson:",inline"`
}
