package celebrity

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
	SearchFields: []string{"name", "fullName", "professions"},
	Filters: map[string]query.Op{
		"status":      query.OpEq,
		"nationality": query.OpEq,
		"professions": query.OpHas,
	},
	SortFields:  []string{"createdAt", "name", "popularity", "views"},
	DefaultSort: "createdAt",
}

// Service handles celebrity business logic.
type Service struct {
	coll *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{coll: db.Collection(database.CollCelebrities)}
}

// List returns one page of profiles plus whole-collection stats. The page
// read and the stats aggregation run concurrently.
func (s *Service) List(ctx context.Context, q pagination.Query, p query.Params) ([]models.Celebrity, response.Pagination, *Stats, error) {
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

	items, pag, err := pagination.Find[models.Celebrity](ctx, s.coll, filter, sort, q)
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
			"_id":         nil,
			"total":       bson.M{"$sum": 1},
			"draft":       statusCount(models.StatusDraft),
			"published":   statusCount(models.StatusPublished),
			"scheduled":   statusCount(models.StatusScheduled),
			"totalViews":  bson.M{"$sum": "$views"},
			"totalShares": bson.M{"$sum": "$shares"},
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

// Get resolves a profile by hex id or slug.
func (s *Service) Get(ctx context.Context, identifier string) (*models.Celebrity, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"slug": identifier}
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		filter = bson.M{"_id": id}
	}

	var cel models.Celebrity
	if err := s.coll.FindOne(ctx, filter).Decode(&cel); err != nil {
		return nil, apperr.Translate(err)
	}
	return &cel, nil
}

// GetPublished resolves a published profile by slug for the public site.
func (s *Service) GetPublished(ctx context.Context, slugStr string) (*models.Celebrity, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var cel models.Celebrity
	err := s.coll.FindOne(ctx, bson.M{"slug": slugStr, "status": models.StatusPublished}).Decode(&cel)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &cel, nil
}

// Create inserts a new profile, deriving the slug from the name when absent.
func (s *Service) Create(ctx context.Context, dto *CreateCelebrityDTO) (*models.Celebrity, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	sl, err := s.resolveSlug(ctx, dto.Slug, dto.Name, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	pub, err := models.NewPublication(dto.Status, dto.PublishAt)
	if err != nil {
		return nil, err
	}

	cel := models.Celebrity{
		Name:        dto.Name,
		Slug:        sl,
		FullName:    dto.FullName,
		Bio:         dto.Bio,
		BirthDate:   dto.BirthDate,
		BirthPlace:  dto.BirthPlace,
		Nationality: dto.Nationality,
		Professions: emptyIfNil(dto.Professions),
		Movies:      emptyIfNil(dto.Movies),
		Awards:      emptyIfNil(dto.Awards),
		SEO:         models.MergeSEO(models.DefaultSEO(), dto.SEO),
		Publication: pub,
		Timestamps:  models.NewTimestamps(time.Now().UTC()),
	}
	if dto.SocialMedia != nil {
		cel.SocialMedia = *dto.SocialMedia
	}
	if dto.Popularity != nil {
		cel.Popularity = *dto.Popularity
	}

	res, err := s.coll.InsertOne(ctx, &cel)
	if err != nil {
		return nil, wrapDup(apperr.Translate(err), cel.Slug)
	}
	cel.ID = res.InsertedID.(primitive.ObjectID)
	return &cel, nil
}

// Update patches a profile by id. The scheduling coupling is re-applied and
// updatedAt is refreshed on every call.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateCelebrityDTO) (*models.Celebrity, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	cel, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != cel.Slug {
		sl, err := s.resolveSlug(ctx, *dto.Slug, cel.Name, cel.ID)
		if err != nil {
			return nil, err
		}
		cel.Slug = sl
	}
	if dto.Name != nil {
		cel.Name = *dto.Name
	}
	if dto.FullName != nil {
		cel.FullName = *dto.FullName
	}
	if dto.Bio != nil {
		cel.Bio = *dto.Bio
	}
	if dto.BirthDate != nil {
		cel.BirthDate = dto.BirthDate
	}
	if dto.BirthPlace != nil {
		cel.BirthPlace = *dto.BirthPlace
	}
	if dto.Nationality != nil {
		cel.Nationality = *dto.Nationality
	}
	if dto.Professions != nil {
		cel.Professions = dto.Professions
	}
	if dto.Movies != nil {
		cel.Movies = dto.Movies
	}
	if dto.Awards != nil {
		cel.Awards = dto.Awards
	}
	if dto.SocialMedia != nil {
		cel.SocialMedia = *dto.SocialMedia
	}
	if dto.SEO != nil {
		cel.SEO = models.MergeSEO(models.DefaultSEO(), dto.SEO)
	}
	if dto.Popularity != nil {
		cel.Popularity = *dto.Popularity
	}

	status := cel.Status
	if dto.Status != nil {
		status = *dto.Status
	}
	publishAt := cel.PublishAt
	if dto.PublishAt != nil {
		publishAt = dto.PublishAt
	}
	pub, err := models.NewPublication(status, publishAt)
	if err != nil {
		return nil, err
	}
	cel.Publication = pub
	cel.UpdatedAt = time.Now().UTC()

	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": cel.ID}, cel); err != nil {
		return nil, wrapDup(apperr.Translate(err), cel.Slug)
	}
	return cel, nil
}

// Delete permanently removes a profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: celebrity %q", apperr.ErrNotFound, id)
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: celebrity %q", apperr.ErrNotFound, id)
	}
	return nil
}

// IncrementViews bumps the profile view counter. Called fire-and-forget.
func (s *Service) IncrementViews(id primitive.ObjectID) error {
	ctx, cancel := database.WithTimeout(context.Background())
	defer cancel()
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// IncrementShares bumps the profile share counter.
func (s *Service) IncrementShares(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: celebrity %q", apperr.ErrNotFound, id)
	}
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()
	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"shares": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: celebrity %q", apperr.ErrNotFound, id)
	}
	return nil
}

func (s *Service) resolveSlug(ctx context.Context, supplied, name string, excludeID primitive.ObjectID) (string, error) {
	return slug.Resolve(ctx, supplied, name, func(ctx context.Context, sl string) (bool, error) {
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
