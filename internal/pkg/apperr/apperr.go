// Package apperr defines the application error taxonomy shared by all
// feature modules. Services wrap these sentinels with context via fmt.Errorf
// and handlers translate them to HTTP statuses at the boundary.
package apperr

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound means an id or slug did not resolve to an existing record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a unique field (slug, email) is already taken.
	ErrDuplicate = errors.New("duplicate value")
	// ErrValidation means the payload failed a domain validation rule.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden means the operation targets a protected record.
	ErrForbidden = errors.New("forbidden")
)

// Translate converts storage-level write errors to the taxonomy. The unique
// indexes on slug and email fields backstop the check-then-write path, so a
// concurrent duplicate surfaces here instead of racing through.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
