package slug

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargazed/core/internal/pkg/apperr"
)

func neverTaken(context.Context, string) (bool, error)  { return false, nil }
func alwaysTaken(context.Context, string) (bool, error) { return true, nil }

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("derives from the title when no slug is supplied", func(t *testing.T) {
		sl, err := Resolve(ctx, "", "A Title", neverTaken)
		require.NoError(t, err)
		assert.Equal(t, "a-title", sl)
	})

	t.Run("supplied slug wins over the title", func(t *testing.T) {
		sl, err := Resolve(ctx, "  custom-slug  ", "A Title", neverTaken)
		require.NoError(t, err)
		assert.Equal(t, "custom-slug", sl)
	})

	t.Run("second create of the same title is rejected", func(t *testing.T) {
		existing := map[string]bool{}
		lookup := func(_ context.Context, sl string) (bool, error) {
			return existing[sl], nil
		}

		sl, err := Resolve(ctx, "", "A Title", lookup)
		require.NoError(t, err)
		existing[sl] = true

		_, err = Resolve(ctx, "", "A Title", lookup)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrDuplicate)
		assert.Contains(t, err.Error(), "a-title")
	})

	t.Run("taken supplied slug is rejected", func(t *testing.T) {
		_, err := Resolve(ctx, "met-gala-2024", "ignored", alwaysTaken)
		assert.ErrorIs(t, err, apperr.ErrDuplicate)
	})

	t.Run("underivable slug fails validation", func(t *testing.T) {
		_, err := Resolve(ctx, "", "!!!", neverTaken)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("lookup errors pass through", func(t *testing.T) {
		boom := fmt.Errorf("connection reset")
		_, err := Resolve(ctx, "", "A Title", func(context.Context, string) (bool, error) {
			return false, boom
		})
		assert.Equal(t, boom, err)
	})
}
