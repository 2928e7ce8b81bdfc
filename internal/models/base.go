package models

import (
	"fmt"
	"time"

	"github.com/stargazed/core/internal/pkg/apperr"
)

// Content publication statuses. A closed set shared by every content entity
// except Movie, which carries its own production status.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusScheduled = "scheduled"
)

// ValidStatus reports whether s is a known publication status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled:
		return true
	}
	return false
}

// Publication holds the status and scheduling fields embedded in every
// content document. IsScheduled and PublishAt are coupled to Status:
// scheduled requires a publish timestamp, any other status clears both.
type Publication struct {
	Status      string     `bson:"status"      json:"status"`
	IsScheduled bool       `bson:"isScheduled" json:"isScheduled"`
	PublishAt   *time.Time `bson:"publishAt,omitempty" json:"publishAt,omitempty"`
}

// NewPublication validates a status/publishAt pair and returns the coupled
// Publication. It is applied on every create and every update, regardless of
// the prior values.
func NewPublication(status string, publishAt *time.Time) (Publication, error) {
	if status == "" {
		status = StatusDraft
	}
	if !ValidStatus(status) {
		return Publication{}, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, status)
	}
	if status == StatusScheduled {
		if publishAt == nil {
			return Publication{}, fmt.Errorf("%w: scheduled status requires publishAt", apperr.ErrValidation)
		}
		return Publication{Status: status, IsScheduled: true, PublishAt: publishAt}, nil
	}
	return Publication{Status: status}, nil
}

// Timestamps are the bookkeeping fields shared by all documents. UpdatedAt is
// refreshed explicitly by the mutation handlers, not by driver hooks.
type Timestamps struct {
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewTimestamps returns creation-time bookkeeping fields.
func NewTimestamps(now time.Time) Timestamps {
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}
