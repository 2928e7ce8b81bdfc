package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/apperr"
)

func TestValidScores(t *testing.T) {
	assert.NoError(t, validScores(models.ReviewScores{
		Acting: 8.5, Direction: 9, Screenplay: 7, Visuals: 10, Overall: 8.6,
	}))
	assert.NoError(t, validScores(models.ReviewScores{}))

	err := validScores(models.ReviewScores{Overall: 10.5})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = validScores(models.ReviewScores{Acting: -1})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
