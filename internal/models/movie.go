package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie production statuses. Movies use this enum instead of the
// draft/published/scheduled publication cycle.
const (
	MovieAnnounced      = "Announced"
	MovieInProduction   = "In Production"
	MoviePostProduction = "Post-Production"
	MovieReleased       = "Released"
	MovieCancelled      = "Cancelled"
)

// ValidMovieStatus reports whether s is a known production status.
func ValidMovieStatus(s string) bool {
	switch s {
	case MovieAnnounced, MovieInProduction, MoviePostProduction, MovieReleased, MovieCancelled:
		return true
	}
	return false
}

// Movie is a standalone catalog entry.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title"         json:"title"`
	Slug        string             `bson:"slug"          json:"slug"`
	Synopsis    string             `bson:"synopsis"      json:"synopsis"`
	Genres      []string           `bson:"genre"         json:"genre"`
	Cast        []CastMember       `bson:"cast"          json:"cast"`
	Director    string             `bson:"director"      json:"director"`
	ReleaseDate *time.Time         `bson:"releaseDate,omitempty" json:"releaseDate,omitempty"`
	RuntimeMin  int                `bson:"runtimeMin"    json:"runtimeMin"`
	Status      string             `bson:"status"        json:"status"`
	Rating      float64            `bson:"rating"        json:"rating"`
	Poster      string             `bson:"poster"        json:"poster"`
	Trailer     string             `bson:"trailer"       json:"trailer"`
	SEOData     SEO                `bson:"seoData"       json:"seoData"`
	Timestamps  `bson:",inline"`
}

// CastMember is an actor/role pairing embedded in movies and reviews.
type CastMember struct {
	Name      string `bson:"name"      json:"name"`
	Character string `bson:"character" json:"character"`
	Photo     string `bson:"photo"     json:"photo"`
}
