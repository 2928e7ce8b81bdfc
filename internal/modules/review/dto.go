package review

import (
	"time"

	"github.com/stargazed/core/internal/models"
)

// CreateReviewDTO is the request body for publishing a review.
type CreateReviewDTO struct {
	Title        string                    `json:"title" binding:"required"`
	Slug         string                    `json:"slug"`
	Author       models.ReviewAuthor       `json:"author"`
	MovieDetails models.ReviewMovieDetails `json:"movieDetails" binding:"required"`
	Body         string                    `json:"body" binding:"required"`
	Scores       models.ReviewScores       `json:"scores"`
	Status       string                    `json:"status"`
	PublishAt    *time.Time                `json:"publishAt"`
	SEO          *models.SEOInput          `json:"seo"`
}

// UpdateReviewDTO is the request body for updating a review.
type UpdateReviewDTO struct {
	Title        *string                    `json:"title"`
	Slug         *string                    `json:"slug"`
	Author       *models.ReviewAuthor       `json:"author"`
	MovieDetails *models.ReviewMovieDetails `json:"movieDetails"`
	Body         *string                    `json:"body"`
	Scores       *models.ReviewScores       `json:"scores"`
	Status       *string                    `json:"status"`
	PublishAt    *time.Time                 `json:"publishAt"`
	SEO          *models.SEOInput           `json:"seo"`
}

// Stats summarizes the whole review collection.
type Stats struct {
	Total      int64   `bson:"total"      json:"total"`
	Draft      int64   `bson:"draft"      json:"draft"`
	Published  int64   `bson:"published"  json:"published"`
	Scheduled  int64   `bson:"scheduled"  json:"scheduled"`
	AvgOverall float64 `bson:"avgOverall" json:"avgOverall"`
}
