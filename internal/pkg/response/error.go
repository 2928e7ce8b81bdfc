package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/pkg/apperr"
)

// Error maps a service error onto the envelope using the apperr taxonomy.
// Anything outside the taxonomy is an internal failure and surfaces its
// message as-is.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrDuplicate):
		BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Forbidden(c)
	default:
		InternalError(c, err)
	}
}
