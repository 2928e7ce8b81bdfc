// Package query builds storage filters from typed, allow-listed request
// parameters. Handlers construct Filter values for known fields only; any
// field or operator outside an entity's Spec is rejected before it reaches
// the storage layer.
package query

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stargazed/core/internal/pkg/apperr"
)

// Op is a filter operator.
type Op string

const (
	// OpEq matches a field exactly.
	OpEq Op = "eq"
	// OpHas matches membership in an array field.
	OpHas Op = "has"
)

// Filter is one typed filter clause. Clauses are ANDed together.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

// Spec is the per-entity allow-list: which fields are searchable, filterable
// and sortable, and the default sort field.
type Spec struct {
	SearchFields []string
	Filters      map[string]Op
	SortFields   []string
	DefaultSort  string
}

// Params are the parsed list-query inputs.
type Params struct {
	Search    string
	Filters   []Filter
	SortBy    string
	SortOrder string
}

// Build validates params against the spec and translates them to a bson
// filter and sort. The free-text search clause is an OR across the spec's
// search fields, ANDed with the exact-match filters.
func (s Spec) Build(p Params) (bson.M, bson.D, error) {
	filter := bson.M{}

	for _, f := range p.Filters {
		allowedOp, ok := s.Filters[f.Field]
		if !ok {
			return nil, nil, fmt.Errorf("%w: field %q is not filterable", apperr.ErrValidation, f.Field)
		}
		if f.Op != allowedOp {
			return nil, nil, fmt.Errorf("%w: operator %q not allowed on field %q", apperr.ErrValidation, f.Op, f.Field)
		}
		// Equality and array membership share the same storage syntax.
		filter[f.Field] = f.Value
	}

	if p.Search != "" && len(s.SearchFields) > 0 {
		pattern := regexp.QuoteMeta(p.Search)
		or := make([]bson.M, 0, len(s.SearchFields))
		for _, field := range s.SearchFields {
			or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
		}
		if len(filter) == 0 {
			filter["$or"] = or
		} else {
			filter = bson.M{"$and": []bson.M{filter, {"$or": or}}}
		}
	}

	sort, err := s.buildSort(p.SortBy, p.SortOrder)
	if err != nil {
		return nil, nil, err
	}
	return filter, sort, nil
}

func (s Spec) buildSort(sortBy, sortOrder string) (bson.D, error) {
	field := s.DefaultSort
	if sortBy != "" {
		found := false
		for _, allowed := range s.SortFields {
			if sortBy == allowed {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: cannot sort by %q", apperr.ErrValidation, sortBy)
		}
		field = sortBy
	}
	if field == "" {
		return nil, nil
	}

	dir := -1
	switch sortOrder {
	case "", "desc":
	case "asc":
		dir = 1
	default:
		return nil, fmt.Errorf("%w: sortOrder must be asc or desc", apperr.ErrValidation)
	}
	return bson.D{{Key: field, Value: dir}}, nil
}
