package review

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
	SearchFields: []string{"title", "movieDetails.title", "movieDetails.director"},
	Filters: map[string]query.Op{
		"status":             query.OpEq,
		"movieDetails.genre": query.OpHas,
	},
	SortFields:  []string{"createdAt", "title", "scores.overall", "stats.views"},
	DefaultSort: "createdAt",
}

// Service handles movie review business logic.
type Service struct {
	coll *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{coll: db.Collection(database.CollReviews)}
}

// List returns one page of reviews plus whole-collection stats.
func (s *Service) List(ctx context.Context, q pagination.Query, p query.Params) ([]models.MovieReview, response.Pagination, *Stats, error) {
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

	items, pag, err := pagination.Find[models.MovieReview](ctx, s.coll, filter, sort, q)
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
			"_id":        nil,
			"total":      bson.M{"$sum": 1},
			"draft":      statusCount(models.StatusDraft),
			"published":  statusCount(models.StatusPublished),
			"scheduled":  statusCount(models.StatusScheduled),
			"avgOverall": bson.M{"$avg": "$scores.overall"},
		},
	}}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []Stats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Stats{}, nil
	}
	return &rows[0], nil
}

func statusCount(status string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": []interface{}{
		bson.M{"$eq": []interface{}{"$status", status}}, 1, 0,
	}}}
}

// Get resolves a review by hex id or slug.
func (s *Service) Get(ctx context.Context, identifier string) (*models.MovieReview, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"slug": identifier}
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		filter = bson.M{"_id": id}
	}

	var rev models.MovieReview
	if err := s.coll.FindOne(ctx, filter).Decode(&rev); err != nil {
		return nil, apperr.Translate(err)
	}
	return &rev, nil
}

// GetPublished resolves a published review by slug for the public site.
func (s *Service) GetPublished(ctx context.Context, slugStr string) (*models.MovieReview, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var rev models.MovieReview
	err := s.coll.FindOne(ctx, bson.M{"slug": slugStr, "status": models.StatusPublished}).Decode(&rev)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &rev, nil
}

// Create inserts a new review, deriving the slug from the title when absent.
func (s *Service) Create(ctx context.Context, dto *CreateReviewDTO) (*models.MovieReview, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if err := validScores(dto.Scores); err != nil {
		return nil, err
	}
	sl, err := s.resolveSlug(ctx, dto.Slug, dto.Title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	pub, err := models.NewPublication(dto.Status, dto.PublishAt)
	if err != nil {
		return nil, err
	}

	details := dto.MovieDetails
	if details.Genres == nil {
		details.Genres = []string{}
	}
	if details.Cast == nil {
		details.Cast = []models.CastMember{}
	}

	rev := models.MovieReview{
		Title:        dto.Title,
		Slug:         sl,
		Author:       dto.Author,
		MovieDetails: details,
		Body:         dto.Body,
		Scores:       dto.Scores,
		SEO:          models.MergeSEO(models.DefaultSEO(), dto.SEO),
		Publication:  pub,
		Timestamps:   models.NewTimestamps(time.Now().UTC()),
	}

	res, err := s.coll.InsertOne(ctx, &rev)
	if err != nil {
		return nil, wrapDup(apperr.Translate(err), rev.Slug)
	}
	rev.ID = res.InsertedID.(primitive.ObjectID)
	return &rev, nil
}

// Update patches a review by id. The scheduling coupling is re-applied and
// updatedAt is refreshed on every call.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateReviewDTO) (*models.MovieReview, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	rev, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != rev.Slug {
		sl, err := s.resolveSlug(ctx, *dto.Slug, rev.Title, rev.ID)
		if err != nil {
			return nil, err
		}
		rev.Slug = sl
	}
	if dto.Title != nil {
		rev.Title = *dto.Title
	}
	if dto.Author != nil {
		rev.Author = *dto.Author
	}
	if dto.MovieDetails != nil {
		rev.MovieDetails = *dto.MovieDetails
	}
	if dto.Body != nil {
		rev.Body = *dto.Body
	}
	if dto.Scores != nil {
		if err := validScores(*dto.Scores); err != nil {
			return nil, err
		}
		rev.Scores = *dto.Scores
	}
	if dto.SEO != nil {
		rev.SEO = models.MergeSEO(models.DefaultSEO(), dto.SEO)
	}

	status := rev.Status
	if dto.Status != nil {
		status = *dto.Status
	}
	publishAt := rev.PublishAt
	if dto.PublishAt != nil {
		publishAt = dto.PublishAt
	}
	pub, err := models.NewPublication(status, publishAt)
	if err != nil {
		return nil, err
	}
	rev.Publication = pub
	rev.UpdatedAt = time.Now().UTC()

	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rev.ID}, rev); err != nil {
		return nil, wrapDup(apperr.Translate(err), rev.Slug)
	}
	return rev, nil
}

// Delete permanently removes a review.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: review %q", apperr.ErrNotFound, id)
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: review %q", apperr.ErrNotFound, id)
	}
	return nil
}

// IncrementViews bumps the review view counter. Called fire-and-forget.
func (s *Service) IncrementViews(id primitive.ObjectID) error {
	ctx, cancel := database.WithTimeout(context.Background())
	defer cancel()
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"stats.views": 1}})
	return err
}

func validScores(sc models.ReviewScores) error {
	for _, v := range []float64{sc.Acting, sc.Direction, sc.Screenplay, sc.Visuals, sc.Overall} {
		if v < 0 || v > 10 {
			return fmt.Errorf("%w: scores must be between 0 and 10", apperr.ErrValidation)
		}
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
