package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslate(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Translate(nil))
	})

	t.Run("duplicate key becomes ErrDuplicate", func(t *testing.T) {
		err := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		assert.ErrorIs(t, Translate(err), ErrDuplicate)
	})

	t.Run("no documents becomes ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, Translate(mongo.ErrNoDocuments), ErrNotFound)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		orig := fmt.Errorf("connection reset")
		assert.Equal(t, orig, Translate(orig))
	})
}

func TestWrappedSentinelsSurvive(t *testing.T) {
	err := fmt.Errorf("%w: slug %q already exists", ErrDuplicate, "emma-watson")
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Contains(t, err.Error(), "emma-watson")
}
