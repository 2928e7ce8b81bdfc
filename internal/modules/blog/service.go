package blog

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
	"github.com/stargazed/core/internal/pkg/markdown"
	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	"github.com/stargazed/core/internal/pkg/response"
	"github.com/stargazed/core/internal/pkg/slug"
)

var listSpec = query.Spec{
	SearchFields: []string{"title", "excerpt", "tags"},
	Filters: map[string]query.Op{
		"status":   query.OpEq,
		"category": query.OpEq,
		"author":   query.OpEq,
		"tags":     query.OpHas,
	},
	SortFields:  []string{"createdAt", "title", "views"},
	DefaultSort: "createdAt",
}

// Service handles blog business logic.
type Service struct {
	coll *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{coll: db.Collection(database.CollBlogs)}
}

// List returns one page of posts plus whole-collection stats.
func (s *Service) List(ctx context.Context, q pagination.Query, p query.Params) ([]models.Blog, response.Pagination, *Stats, error) {
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

	items, pag, err := pagination.Find[models.Blog](ctx, s.coll, filter, sort, q)
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
			"totalViews": bson.M{"$sum": "$views"},
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

// Get resolves a post by hex id or slug.
func (s *Service) Get(ctx context.Context, identifier string) (*models.Blog, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"slug": identifier}
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		filter = bson.M{"_id": id}
	}

	var post models.Blog
	if err := s.coll.FindOne(ctx, filter).Decode(&post); err != nil {
		return nil, apperr.Translate(err)
	}
	return &post, nil
}

// GetPublished resolves a published post by slug and renders its body for
// the public site.
func (s *Service) GetPublished(ctx context.Context, slugStr string) (*PublicBlog, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var post models.Blog
	err := s.coll.FindOne(ctx, bson.M{"slug": slugStr, "status": models.StatusPublished}).Decode(&post)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &PublicBlog{Blog: post, BodyHTML: markdown.Render(post.Body)}, nil
}

// Create inserts a new post, deriving the slug from the title when absent.
func (s *Service) Create(ctx context.Context, dto *CreateBlogDTO) (*models.Blog, error) {
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

	post := models.Blog{
		Title:       dto.Title,
		Slug:        sl,
		Excerpt:     dto.Excerpt,
		Body:        dto.Body,
		Category:    dto.Category,
		Tags:        emptyIfNil(dto.Tags),
		Author:      dto.Author,
		CoverImage:  dto.CoverImage,
		SEO:         models.MergeSEO(models.DefaultSEO(), dto.SEO),
		Publication: pub,
		Timestamps:  models.NewTimestamps(time.Now().UTC()),
	}

	res, err := s.coll.InsertOne(ctx, &post)
	if err != nil {
		return nil, wrapDup(apperr.Translate(err), post.Slug)
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return &post, nil
}

// Update patches a post by id. The scheduling coupling is re-applied and
// updatedAt is refreshed on every call.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateBlogDTO) (*models.Blog, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != post.Slug {
		sl, err := s.resolveSlug(ctx, *dto.Slug, post.Title, post.ID)
		if err != nil {
			return nil, err
		}
		post.Slug = sl
	}
	if dto.Title != nil {
		post.Title = *dto.Title
	}
	if dto.Excerpt != nil {
		post.Excerpt = *dto.Excerpt
	}
	if dto.Body != nil {
		post.Body = *dto.Body
	}
	if dto.Category != nil {
		post.Category = *dto.Category
	}
	if dto.Tags != nil {
		post.Tags = dto.Tags
	}
	if dto.Author != nil {
		post.Author = *dto.Author
	}
	if dto.CoverImage != nil {
		post.CoverImage = *dto.CoverImage
	}
	if dto.SEO != nil {
		post.SEO = models.MergeSEO(models.DefaultSEO(), dto.SEO)
	}

	status := post.Status
	if dto.Status != nil {
		status = *dto.Status
	}
	publishAt := post.PublishAt
	if dto.PublishAt != nil {
		publishAt = dto.PublishAt
	}
	pub, err := models.NewPublication(status, publishAt)
	if err != nil {
		return nil, err
	}
	post.Publication = pub
	post.UpdatedAt = time.Now().UTC()

	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": post.ID}, post); err != nil {
		return nil, wrapDup(apperr.Translate(err), post.Slug)
	}
	return post, nil
}

// Delete permanently removes a post.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: blog %q", apperr.ErrNotFound, id)
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: blog %q", apperr.ErrNotFound, id)
	}
	return nil
}

// IncrementViews bumps the post view counter. Called fire-and-forget.
func (s *Service) IncrementViews(id primitive.ObjectID) error {
	ctx, cancel := database.WithTimeout(context.Background())
	defer cancel()
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
	return err
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
