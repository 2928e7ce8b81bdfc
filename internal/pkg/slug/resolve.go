package slug

import (
	"context"
	"fmt"
	"strings"

	"github.com/stargazed/core/internal/pkg/apperr"
)

// TakenFunc reports whether a candidate slug is already held by another
// record. The storage lookup lives behind this seam so the resolution rules
// stay testable without a database.
type TakenFunc func(ctx context.Context, slug string) (bool, error)

// Resolve returns the slug to store: the supplied one when present, otherwise
// one derived from fallback. A candidate held by another record resolves to
// ErrDuplicate so the second create of the same title fails instead of
// silently reusing the slug.
func Resolve(ctx context.Context, supplied, fallback string, taken TakenFunc) (string, error) {
	sl := strings.TrimSpace(supplied)
	if sl == "" {
		sl = Make(fallback)
	}
	if sl == "" {
		return "", fmt.Errorf("%w: cannot derive slug from %q", apperr.ErrValidation, fallback)
	}
	held, err := taken(ctx, sl)
	if err != nil {
		return "", err
	}
	if held {
		return "", fmt.Errorf("%w: slug %q already exists", apperr.ErrDuplicate, sl)
	}
	return sl, nil
}
