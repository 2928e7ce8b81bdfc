package outfit

import (
	"time"

	"github.com/stargazed/core/internal/models"
)

// CreateOutfitDTO is the request body for creating an outfit.
type CreateOutfitDTO struct {
	Title       string           `json:"title" binding:"required"`
	Slug        string           `json:"slug"`
	Celebrity   string           `json:"celebrity" binding:"required"`
	Images      []string         `json:"images" binding:"required,min=1"`
	Event       string           `json:"event"`
	Designer    string           `json:"designer"`
	Year        int              `json:"year"`
	Category    string           `json:"category" binding:"required"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	SEO         *models.SEOInput `json:"seo"`
	Status      string           `json:"status"`
	PublishAt   *time.Time       `json:"publishAt"`
}

// UpdateOutfitDTO is the request body for updating an outfit.
type UpdateOutfitDTO struct {
	Title       *string          `json:"title"`
	Slug        *string          `json:"slug"`
	Celebrity   *string          `json:"celebrity"`
	Images      []string         `json:"images"`
	Event       *string          `json:"event"`
	Designer    *string          `json:"designer"`
	Year        *int             `json:"year"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Tags        []string         `json:"tags"`
	SEO         *models.SEOInput `json:"seo"`
	Status      *string          `json:"status"`
	PublishAt   *time.Time       `json:"publishAt"`
}

// Stats summarizes the whole outfit collection.
type Stats struct {
	Total      int64            `bson:"total"      json:"total"`
	Draft      int64            `bson:"draft"      json:"draft"`
	Published  int64            `bson:"published"  json:"published"`
	Scheduled  int64            `bson:"scheduled"  json:"scheduled"`
	ByCategory map[string]int64 `bson:"-"          json:"byCategory"`
}
