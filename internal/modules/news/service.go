package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stargazed/core/internal/database"
	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/apperr"
	"github.com/stargazed/core/internal/pkg/markdown"
	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	"github.com/stargazed/core/internal/pkg/response"
	"github.com/stargazed/core/internal/pkg/slug"
)

var listSpec = query.Spec{
	SearchFields: []string{"title", "excerpt"},
	Filters: map[string]query.Op{
		"status":      query.OpEq,
		"category":    query.OpEq,
		"celebrityId": query.OpEq,
	},
	SortFields:  []string{"createdAt", "title", "counters.views", "counters.likes"},
	DefaultSort: "createdAt",
}

// Service handles news business logic.
type Service struct {
	coll        *mongo.Collection
	celebrities *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		coll:        db.Collection(database.CollNews),
		celebrities: db.Collection(database.CollCelebrities),
	}
}

// List returns one page of articles plus whole-collection stats.
func (s *Service) List(ctx context.Context, q pagination.Query, p query.Params) ([]models.News, response.Pagination, *Stats, error) {
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

	items, pag, err := pagination.Find[models.News](ctx, s.coll, filter, sort, q)
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
			"_id":           nil,
			"total":         bson.M{"$sum": 1},
			"draft":         statusCount(models.StatusDraft),
			"published":     statusCount(models.StatusPublished),
			"scheduled":     statusCount(models.StatusScheduled),
			"totalViews":    bson.M{"$sum": "$counters.views"},
			"totalLikes":    bson.M{"$sum": "$counters.likes"},
			"totalShares":   bson.M{"$sum": "$counters.shares"},
			"totalComments": bson.M{"$sum": "$counters.comments"},
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

// Get resolves an article by hex id or slug.
func (s *Service) Get(ctx context.Context, identifier string) (*models.News, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"slug": identifier}
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		filter = bson.M{"_id": id}
	}

	var art models.News
	if err := s.coll.FindOne(ctx, filter).Decode(&art); err != nil {
		return nil, apperr.Translate(err)
	}
	return &art, nil
}

// GetPublished resolves a published article by slug and renders its body for
// the public site.
func (s *Service) GetPublished(ctx context.Context, slugStr string) (*PublicNews, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var art models.News
	err := s.coll.FindOne(ctx, bson.M{"slug": slugStr, "status": models.StatusPublished}).Decode(&art)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &PublicNews{News: art, BodyHTML: markdown.Render(art.Body)}, nil
}

// Create inserts a new article, deriving the slug from the title when absent.
func (s *Service) Create(ctx context.Context, dto *CreateNewsDTO) (*models.News, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	sl, err := s.resolveSlug(ctx, dto.Slug, dto.Title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	pub, err := models.NewPublication(dto.Status, dto.PublishAt)
	if err != nil {
		return nil, err
	}
	celebrityID, err := s.resolveCelebrity(ctx, dto.Celebrity)
	if err != nil {
		return nil, err
	}

	art := models.News{
		Title:       dto.Title,
		Slug:        sl,
		Excerpt:     dto.Excerpt,
		Body:        dto.Body,
		CelebrityID: celebrityID,
		Category:    dto.Category,
		CoverImage:  dto.CoverImage,
		SEO:         models.MergeSEO(models.DefaultSEO(), dto.SEO),
		Publication: pub,
		Timestamps:  models.NewTimestamps(time.Now().UTC()),
	}

	res, err := s.coll.InsertOne(ctx, &art)
	if err != nil {
		return nil, wrapDup(apperr.Translate(err), art.Slug)
	}
	art.ID = res.InsertedID.(primitive.ObjectID)
	return &art, nil
}

// Update patches an article by id. The scheduling coupling is re-applied and
// updatedAt is refreshed on every call.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateNewsDTO) (*models.News, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	art, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != art.Slug {
		sl, err := s.resolveSlug(ctx, *dto.Slug, art.Title, art.ID)
		if err != nil {
			return nil, err
		}
		art.Slug = sl
	}
	if dto.Title != nil {
		art.Title = *dto.Title
	}
	if dto.Excerpt != nil {
		art.Excerpt = *dto.Excerpt
	}
	if dto.Body != nil {
		art.Body = *dto.Body
	}
	if dto.Celebrity != nil {
		celebrityID, err := s.resolveCelebrity(ctx, *dto.Celebrity)
		if err != nil {
			return nil, err
		}
		art.CelebrityID = celebrityID
	}
	if dto.Category != nil {
		art.Category = *dto.Category
	}
	if dto.CoverImage != nil {
		art.CoverImage = *dto.CoverImage
	}
	if dto.SEO != nil {
		art.SEO = models.MergeSEO(models.DefaultSEO(), dto.SEO)
	}

	status := art.Status
	if dto.Status != nil {
		status = *dto.Status
	}
	publishAt := art.PublishAt
	if dto.PublishAt != nil {
		publishAt = dto.PublishAt
	}
	pub, err := models.NewPublication(status, publishAt)
	if err != nil {
		return nil, err
	}
	art.Publication = pub
	art.UpdatedAt = time.Now().UTC()

	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": art.ID}, art); err != nil {
		return nil, wrapDup(apperr.Translate(err), art.Slug)
	}
	return art, nil
}

// Delete permanently removes an article.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: news %q", apperr.ErrNotFound, id)
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: news %q", apperr.ErrNotFound, id)
	}
	return nil
}

// IncrementViews bumps the article view counter. Called fire-and-forget.
func (s *Service) IncrementViews(id primitive.ObjectID) error {
	ctx, cancel := database.WithTimeout(context.Background())
	defer cancel()
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"counters.views": 1}})
	return err
}

// IncrementCounter bumps one of the engagement counters by id.
func (s *Service) IncrementCounter(ctx context.Context, id, counter string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: news %q", apperr.ErrNotFound, id)
	}
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()
	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"counters." + counter: 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: news %q", apperr.ErrNotFound, id)
	}
	return nil
}

// resolveCelebrity validates the optional celebrity reference. An empty value
// clears the reference.
func (s *Service) resolveCelebrity(ctx context.Context, raw string) (*primitive.ObjectID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid celebrity id %q", apperr.ErrValidation, raw)
	}
	n, err := s.celebrities.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: celebrity %q does not exist", apperr.ErrValidation, raw)
	}
	return &id, nil
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
