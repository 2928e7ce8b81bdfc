package news

import (
	"time"

	"github.com/stargazed/core/internal/models"
)

// CreateNewsDTO is the request body for publishing an article.
type CreateNewsDTO struct {
	Title      string           `json:"title" binding:"required"`
	Slug       string           `json:"slug"`
	Excerpt    string           `json:"excerpt"`
	Body       string           `json:"body" binding:"required"`
	Celebrity  string           `json:"celebrity"`
	Category   string           `json:"category"`
	CoverImage string           `json:"coverImage"`
	Status     string           `json:"status"`
	PublishAt  *time.Time       `json:"publishAt"`
	SEO        *models.SEOInput `json:"seo"`
}

// UpdateNewsDTO is the request body for updating an article.
type UpdateNewsDTO struct {
	Title      *string          `json:"title"`
	Slug       *string          `json:"slug"`
	Excerpt    *string          `json:"excerpt"`
	Body       *string          `json:"body"`
	Celebrity  *string          `json:"celebrity"`
	Category   *string          `json:"category"`
	CoverImage *string          `json:"coverImage"`
	Status     *string          `json:"status"`
	PublishAt  *time.Time       `json:"publishAt"`
	SEO        *models.SEOInput `json:"seo"`
}

// PublicNews is an article shaped for the public site, with the markdown
// body rendered to HTML.
type PublicNews struct {
	models.News
	BodyHTML string `json:"bodyHtml"`
}

// Stats summarizes the whole news collection.
type Stats struct {
	Total         int64 `bson:"total"         json:"total"`
	Draft         int64 `bson:"draft"         json:"draft"`
	Published     int64 `bson:"published"     json:"published"`
	Scheduled     int64 `bson:"scheduled"     json:"scheduled"`
	TotalViews    int64 `bson:"totalViews"    json:"totalViews"`
	TotalLikes    int64 `bson:"totalLikes"    json:"totalLikes"`
	TotalShares   int64 `bson:"totalShares"   json:"totalShares"`
	TotalComments int64 `bson:"totalComments" json:"totalComments"`
}
