package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        Query
	}{
		{"defaults pass through", 1, 10, Query{1, 10}},
		{"zero page coerces", 0, 10, Query{1, 10}},
		{"negative page coerces", -3, 10, Query{1, 10}},
		{"zero limit coerces", 2, 0, Query{2, 10}},
		{"limit capped", 1, 500, Query{1, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.page, tt.limit))
		})
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, int64(0), Query{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, int64(5), Query{Page: 2, Limit: 5}.Skip())
	assert.Equal(t, int64(90), Query{Page: 10, Limit: 10}.Skip())
}

func TestMeta(t *testing.T) {
	t.Run("last page is non-empty, page after is empty", func(t *testing.T) {
		// total=21, limit=10: page 3 holds the final item, page 4 is past the end.
		q := Query{Page: 3, Limit: 10}
		meta := q.Meta(21)
		assert.Equal(t, 3, meta.TotalPages)
		assert.False(t, meta.HasNextPage)
		assert.Less(t, q.Skip(), int64(21))

		past := Query{Page: 4, Limit: 10}
		assert.GreaterOrEqual(t, past.Skip(), int64(21))
	})

	t.Run("empty collection", func(t *testing.T) {
		meta := Query{Page: 1, Limit: 10}.Meta(0)
		assert.Equal(t, int64(0), meta.Total)
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasNextPage)
	})

	t.Run("exact multiple", func(t *testing.T) {
		meta := Query{Page: 1, Limit: 5}.Meta(10)
		assert.Equal(t, 2, meta.TotalPages)
		assert.True(t, meta.HasNextPage)
	})
}
