package movie

import (
	"time"

	"github.com/stargazed/core/internal/models"
)

// CreateMovieDTO is the request body for creating a catalog entry.
type CreateMovieDTO struct {
	Title       string              `json:"title" binding:"required"`
	Slug        string              `json:"slug"`
	Synopsis    string              `json:"synopsis"`
	Genres      []string            `json:"genre" binding:"required,min=1"`
	Cast        []models.CastMember `json:"cast"`
	Director    string              `json:"director"`
	ReleaseDate *time.Time          `json:"releaseDate"`
	RuntimeMin  int                 `json:"runtimeMin"`
	Status      string              `json:"status" binding:"required"`
	Rating      float64             `json:"rating"`
	Poster      string              `json:"poster"`
	Trailer     string              `json:"trailer"`
	SEOData     *models.SEOInput    `json:"seoData"`
}

// UpdateMovieDTO is the request body for updating a catalog entry.
type UpdateMovieDTO struct {
	Title       *string             `json:"title"`
	Slug        *string             `json:"slug"`
	Synopsis    *string             `json:"synopsis"`
	Genres      []string            `json:"genre"`
	Cast        []models.CastMember `json:"cast"`
	Director    *string             `json:"director"`
	ReleaseDate *time.Time          `json:"releaseDate"`
	RuntimeMin  *int                `json:"runtimeMin"`
	Status      *string             `json:"status"`
	Rating      *float64            `json:"rating"`
	Poster      *string             `json:"poster"`
	Trailer     *string             `json:"trailer"`
	SEOData     *models.SEOInput    `json:"seoData"`
}

// Stats summarizes the whole movie collection.
type Stats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"byStatus"`
	AvgRating float64          `json:"avgRating"`
}
