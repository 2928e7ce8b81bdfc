package pagination

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stargazed/core/internal/pkg/response"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts and validates pagination params from the request.
// Invalid numerics coerce to the defaults, never an error.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", "10"), DefaultLimit)
	return Normalize(page, limit)
}

// Normalize clamps raw page/limit values into the accepted range.
func Normalize(page, limit int) Query {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Query{Page: page, Limit: limit}
}

// Skip returns the number of documents to skip for the current page.
func (q Query) Skip() int64 { return int64(q.Page-1) * int64(q.Limit) }

// Meta builds the pagination metadata for a total count.
func (q Query) Meta(total int64) response.Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return response.Pagination{
		Total:       total,
		Page:        q.Page,
		Limit:       q.Limit,
		TotalPages:  totalPages,
		HasNextPage: q.Page < totalPages,
	}
}

// Find runs a counted, sorted, paginated read against a collection. A page
// past the end yields an empty slice and valid metadata, not an error.
func Find[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, q Query) ([]T, response.Pagination, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	opts := options.Find().SetSkip(q.Skip()).SetLimit(int64(q.Limit))
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0, q.Limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, response.Pagination{}, err
	}
	return items, q.Meta(total), nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
