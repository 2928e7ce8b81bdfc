package blog

import (
	"time"

	"github.com/stargazed/core/internal/models"
)

// CreateBlogDTO is the request body for creating a post.
type CreateBlogDTO struct {
	Title      string           `json:"title" binding:"required"`
	Slug       string           `json:"slug"`
	Excerpt    string           `json:"excerpt"`
	Body       string           `json:"body" binding:"required"`
	Category   string           `json:"category"`
	Tags       []string         `json:"tags"`
	Author     string           `json:"author"`
	CoverImage string           `json:"coverImage"`
	Status     string           `json:"status"`
	PublishAt  *time.Time       `json:"publishAt"`
	SEO        *models.SEOInput `json:"seo"`
}

// UpdateBlogDTO is the request body for updating a post.
type UpdateBlogDTO struct {
	Title      *string          `json:"title"`
	Slug       *string          `json:"slug"`
	Excerpt    *string          `json:"excerpt"`
	Body       *string          `json:"body"`
	Category   *string          `json:"category"`
	Tags       []string         `json:"tags"`
	Author     *string          `json:"author"`
	CoverImage *string          `json:"coverImage"`
	Status     *string          `json:"status"`
	PublishAt  *time.Time       `json:"publishAt"`
	SEO        *models.SEOInput `json:"seo"`
}

// PublicBlog is a post shaped for the public site, with the markdown body
// rendered to HTML.
type PublicBlog struct {
	models.Blog
	BodyHTML string `json:"bodyHtml"`
}

// Stats summarizes the whole blog collection.
type Stats struct {
	Total      int64 `bson:"total"      json:"total"`
	Draft      int64 `bson:"draft"      json:"draft"`
	Published  int64 `bson:"published"  json:"published"`
	Scheduled  int64 `bson:"scheduled"  json:"scheduled"`
	TotalViews int64 `bson:"totalViews" json:"totalViews"`
}
