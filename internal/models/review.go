package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ReviewAuthor is the byline embedded in a movie review.
type ReviewAuthor struct {
	Name   string `bson:"name"   json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
}

// ReviewMovieDetails is the reviewed movie snapshot embedded in a review, so
// a review stays coherent even if the catalog entry changes later.
type ReviewMovieDetails struct {
	Title       string       `bson:"title"       json:"title"`
	ReleaseYear int          `bson:"releaseYear" json:"releaseYear"`
	Director    string       `bson:"director"    json:"director"`
	Genres      []string     `bson:"genre"       json:"genre"`
	Cast        []CastMember `bson:"cast"        json:"cast"`
	Poster      string       `bson:"poster"      json:"poster"`
}

// ReviewScores holds per-axis scores and the overall verdict, 0-10.
type ReviewScores struct {
	Acting     float64 `bson:"acting"     json:"acting"`
	Direction  float64 `bson:"direction"  json:"direction"`
	Screenplay float64 `bson:"screenplay" json:"screenplay"`
	Visuals    float64 `bson:"visuals"    json:"visuals"`
	Overall    float64 `bson:"overall"    json:"overall"`
}

// ReviewStats tracks engagement on a review.
type ReviewStats struct {
	Views int64 `bson:"views" json:"views"`
	Likes int64 `bson:"likes" json:"likes"`
}

// MovieReview is a long-form review with an embedded movie snapshot.
type MovieReview struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title"        json:"title"`
	Slug         string             `bson:"slug"         json:"slug"`
	Author       ReviewAuthor       `bson:"author"       json:"author"`
	MovieDetails ReviewMovieDetails `bson:"movieDetails" json:"movieDetails"`
	Body         string             `bson:"body"         json:"body"`
	Scores       ReviewScores       `bson:"scores"       json:"scores"`
	Stats        ReviewStats        `bson:"stats"        json:"stats"`
	SEO          SEO                `bson:"seo"          json:"seo"`
	Publication  `bson:",inline"`
	Timestamps   `bson:",inline"`
}
