package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/stargazed/core/internal/pkg/apperr"
)

var movieSpec = Spec{
	SearchFields: []string{"title", "director"},
	Filters: map[string]Op{
		"status": OpEq,
		"genre":  OpHas,
	},
	SortFields:  []string{"createdAt", "title", "rating"},
	DefaultSort: "createdAt",
}

func TestBuildFilters(t *testing.T) {
	t.Run("exact filters are ANDed", func(t *testing.T) {
		filter, _, err := movieSpec.Build(Params{
			Filters: []Filter{
				{Field: "status", Op: OpEq, Value: "Released"},
				{Field: "genre", Op: OpHas, Value: "Drama"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, bson.M{"status": "Released", "genre": "Drama"}, filter)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, _, err := movieSpec.Build(Params{
			Filters: []Filter{{Field: "passwordHash", Op: OpEq, Value: "x"}},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("wrong operator is rejected", func(t *testing.T) {
		_, _, err := movieSpec.Build(Params{
			Filters: []Filter{{Field: "status", Op: OpHas, Value: "Released"}},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestBuildSearch(t *testing.T) {
	t.Run("search alone becomes an OR clause", func(t *testing.T) {
		filter, _, err := movieSpec.Build(Params{Search: "dune"})
		require.NoError(t, err)
		or, ok := filter["$or"].([]bson.M)
		require.True(t, ok)
		require.Len(t, or, 2)
		assert.Equal(t, bson.M{"$regex": "dune", "$options": "i"}, or[0]["title"])
	})

	t.Run("search is ANDed with filters", func(t *testing.T) {
		filter, _, err := movieSpec.Build(Params{
			Search:  "dune",
			Filters: []Filter{{Field: "status", Op: OpEq, Value: "Released"}},
		})
		require.NoError(t, err)
		and, ok := filter["$and"].([]bson.M)
		require.True(t, ok)
		require.Len(t, and, 2)
	})

	t.Run("regex metacharacters are escaped", func(t *testing.T) {
		filter, _, err := movieSpec.Build(Params{Search: "what.if?"})
		require.NoError(t, err)
		or := filter["$or"].([]bson.M)
		assert.Equal(t, `what\.if\?`, or[0]["title"].(bson.M)["$regex"])
	})
}

func TestBuildSort(t *testing.T) {
	t.Run("default sort is descending", func(t *testing.T) {
		_, sort, err := movieSpec.Build(Params{})
		require.NoError(t, err)
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, sort)
	})

	t.Run("explicit ascending sort", func(t *testing.T) {
		_, sort, err := movieSpec.Build(Params{SortBy: "title", SortOrder: "asc"})
		require.NoError(t, err)
		assert.Equal(t, bson.D{{Key: "title", Value: 1}}, sort)
	})

	t.Run("unlisted sort field is rejected", func(t *testing.T) {
		_, _, err := movieSpec.Build(Params{SortBy: "passwordHash"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("bad sort order is rejected", func(t *testing.T) {
		_, _, err := movieSpec.Build(Params{SortBy: "title", SortOrder: "sideways"})
		require.Error(t, err)
	})
}
