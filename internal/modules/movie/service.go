package movie

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stargazed/core/internal/database"
	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/apperr"
	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	"github.com/stargazed/core/internal/pkg/response"
	"github.com/stargazed/core/internal/pkg/slug"
)

var listSpec = query.Spec{
	SearchFields: []string{"title", "director"},
	Filters: map[string]query.Op{
		"status": query.OpEq,
		"genre":  query.OpHas,
	},
	SortFields:  []string{"createdAt", "title", "releaseDate", "rating"},
	DefaultSort: "createdAt",
}

// Service handles movie catalog business logic.
type Service struct {
	coll *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{coll: db.Collection(database.CollMovies)}
}

// List returns one page of movies plus whole-collection stats.
func (s *Service) List(ctx context.Context, q pagination.Query, p query.Params) ([]models.Movie, response.Pagination, *Stats, error) {
	filter, sort, err := listSpec.Build(p)
	if err != nil {
		return nil, response.Pagination{}, nil, err
	}

	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	type statsOut struct {
		stats *Stats
		err   error
	}
	statsCh := make(chan statsOut, 1)
	go func() {
		st, err := s.stats(ctx)
		statsCh <- statsOut{st, err}
	}()

	items, pag, err := pagination.Find[models.Movie](ctx, s.coll, filter, sort, q)
	if err != nil {
		return nil, response.Pagination{}, nil, err
	}
	out := <-statsCh
	if out.err != nil {
		return nil, response.Pagination{}, nil, out.err
	}
	return items, pag, out.stats, nil
}

func (s *Service) stats(ctx context.Context) (*Stats, error) {
	pipeline := []bson.M{{
		"$group": bson.M{
			"_id":       "$status",
			"count":     bson.M{"$sum": 1},
			"avgRating": bson.M{"$avg": "$rating"},
		},
	}}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status    string  `bson:"_id"`
		Count     int64   `bson:"count"`
		AvgRating float64 `bson:"avgRating"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	st := &Stats{ByStatus: map[string]int64{}}
	var ratingSum float64
	for _, row := range rows {
		st.Total += row.Count
		st.ByStatus[row.Status] = row.Count
		ratingSum += row.AvgRating * float64(row.Count)
	}
	if st.Total > 0 {
		st.AvgRating = ratingSum / float64(st.Total)
	}
	return st, nil
}

// Get resolves a movie by hex id or slug.
func (s *Service) Get(ctx context.Context, identifier string) (*models.Movie, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"slug": identifier}
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		filter = bson.M{"_id": id}
	}

	var mov models.Movie
	if err := s.coll.FindOne(ctx, filter).Decode(&mov); err != nil {
		return nil, apperr.Translate(err)
	}
	return &mov, nil
}

// GetBySlug resolves a catalog entry by slug for the public site. Movies have
// no publication cycle, so every catalog entry is publicly readable.
func (s *Service) GetBySlug(ctx context.Context, slugStr string) (*models.Movie, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var mov models.Movie
	if err := s.coll.FindOne(ctx, bson.M{"slug": slugStr}).Decode(&mov); err != nil {
		return nil, apperr.Translate(err)
	}
	return &mov, nil
}

// Create inserts a new catalog entry, deriving the slug from the title when absent.
func (s *Service) Create(ctx context.Context, dto *CreateMovieDTO) (*models.Movie, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if !models.ValidMovieStatus(dto.Status) {
		return nil, fmt.Errorf("%w: unknown production status %q", apperr.ErrValidation, dto.Status)
	}
	sl, err := s.resolveSlug(ctx, dto.Slug, dto.Title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	mov := models.Movie{
		Title:       dto.Title,
		Slug:        sl,
		Synopsis:    dto.Synopsis,
		Genres:      dto.Genres,
		Cast:        emptyIfNil(dto.Cast),
		Director:    dto.Director,
		ReleaseDate: dto.ReleaseDate,
		RuntimeMin:  dto.RuntimeMin,
		Status:      dto.Status,
		Rating:      dto.Rating,
		Poster:      dto.Poster,
		Trailer:     dto.Trailer,
		SEOData:     models.MergeSEO(models.DefaultSEO(), dto.SEOData),
		Timestamps:  models.NewTimestamps(time.Now().UTC()),
	}

	res, err := s.coll.InsertOne(ctx, &mov)
	if err != nil {
		return nil, wrapDup(apperr.Translate(err), mov.Slug)
	}
	mov.ID = res.InsertedID.(primitive.ObjectID)
	return &mov, nil
}

// Update patches a catalog entry by id.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateMovieDTO) (*models.Movie, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	mov, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != mov.Slug {
		sl, err := s.resolveSlug(ctx, *dto.Slug, mov.Title, mov.ID)
		if err != nil {
			return nil, err
		}
		mov.Slug = sl
	}
	if dto.Title != nil {
		mov.Title = *dto.Title
	}
	if dto.Synopsis != nil {
		mov.Synopsis = *dto.Synopsis
	}
	if dto.Genres != nil {
		if len(dto.Genres) == 0 {
			return nil, fmt.Errorf("%w: genre cannot be empty", apperr.ErrValidation)
		}
		mov.Genres = dto.Genres
	}
	if dto.Cast != nil {
		mov.Cast = dto.Cast
	}
	if dto.Director != nil {
		mov.Director = *dto.Director
	}
	if dto.ReleaseDate != nil {
		mov.ReleaseDate = dto.ReleaseDate
	}
	if dto.RuntimeMin != nil {
		mov.RuntimeMin = *dto.RuntimeMin
	}
	if dto.Status != nil {
		if !models.ValidMovieStatus(*dto.Status) {
			return nil, fmt.Errorf("%w: unknown production status %q", apperr.ErrValidation, *dto.Status)
		}
		mov.Status = *dto.Status
	}
	if dto.Rating != nil {
		mov.Rating = *dto.Rating
	}
	if dto.Poster != nil {
		mov.Poster = *dto.Poster
	}
	if dto.Trailer != nil {
		mov.Trailer = *dto.Trailer
	}
	if dto.SEOData != nil {
		mov.SEOData = models.MergeSEO(models.DefaultSEO(), dto.SEOData)
	}
	mov.UpdatedAt = time.Now().UTC()

	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": mov.ID}, mov); err != nil {
		return nil, wrapDup(apperr.Translate(err), mov.Slug)
	}
	return mov, nil
}

// Delete permanently removes a catalog entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: movie %q", apperr.ErrNotFound, id)
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: movie %q", apperr.ErrNotFound, id)
	}
	return nil
}

func (s *Service) resolveSlug(ctx context.Context, supplied, title string, excludeID primitive.ObjectID) (string, error) {
	return slug.Resolve(ctx, supplied, title, func(ctx context.Context, sl string) (bool, error) {
		return database.SlugTaken(ctx, s.coll, sl, excludeID)
	})
}

func wrapDup(err error, sl string) error {
	if errors.Is(err, apperr.ErrDuplicate) {
		return fmt.Errorf("%w: slug %q already exists", apperr.ErrDuplicate, sl)
	}
	return err
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
