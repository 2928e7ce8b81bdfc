package celebrity

import (
	"time"

	"github.com/stargazed/core/internal/models"
)

// CreateCelebrityDTO is the request body for creating a profile.
type CreateCelebrityDTO struct {
	Name        string                  `json:"name" binding:"required"`
	Slug        string                  `json:"slug"`
	FullName    string                  `json:"fullName"`
	Bio         string                  `json:"bio"`
	BirthDate   *time.Time              `json:"birthDate"`
	BirthPlace  string                  `json:"birthPlace"`
	Nationality string                  `json:"nationality"`
	Professions []string                `json:"professions"`
	Movies      []models.CelebrityMovie `json:"movies"`
	Awards      []models.Award          `json:"awards"`
	SocialMedia *models.SocialMedia     `json:"socialMedia"`
	SEO         *models.SEOInput        `json:"seo"`
	Popularity  *int                    `json:"popularity"`
	Status      string                  `json:"status"`
	PublishAt   *time.Time              `json:"publishAt"`
}

// UpdateCelebrityDTO is the request body for updating a profile. Nil fields
// were not supplied and keep their stored values.
type UpdateCelebrityDTO struct {
	Name        *string                 `json:"name"`
	Slug        *string                 `json:"slug"`
	FullName    *string                 `json:"fullName"`
	Bio         *string                 `json:"bio"`
	BirthDate   *time.Time              `json:"birthDate"`
	BirthPlace  *string                 `json:"birthPlace"`
	Nationality *string                 `json:"nationality"`
	Professions []string                `json:"professions"`
	Movies      []models.CelebrityMovie `json:"movies"`
	Awards      []models.Award          `json:"awards"`
	SocialMedia *models.SocialMedia     `json:"socialMedia"`
	SEO         *models.SEOInput        `json:"seo"`
	Popularity  *int                    `json:"popularity"`
	Status      *string                 `json:"status"`
	PublishAt   *time.Time              `json:"publishAt"`
}

// Stats is the aggregate summary returned beside every list page. It always
// reflects the whole collection, not the filtered page.
type Stats struct {
	Total       int64 `bson:"total"       json:"total"`
	Draft       int64 `bson:"draft"       json:"draft"`
	Published   int64 `bson:"published"   json:"published"`
	Scheduled   int64 `bson:"scheduled"   json:"scheduled"`
	TotalViews  int64 `bson:"totalViews"  json:"totalViews"`
	TotalShares int64 `bson:"totalShares" json:"totalShares"`
}
