package outfit

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
	SearchFields: []string{"title", "event", "designer"},
	Filters: map[string]query.Op{
		"status":      query.OpEq,
		"category":    query.OpEq,
		"celebrityId": query.OpEq,
		"year":        query.OpEq,
	},
	SortFields:  []string{"createdAt", "title", "year", "views"},
	DefaultSort: "createdAt",
}

// Service handles outfit business logic.
type Service struct {
	coll        *mongo.Collection
	celebrities *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		coll:        db.Collection(database.CollOutfits),
		celebrities: db.Collection(database.CollCelebrities),
	}
}

// List returns one page of outfits plus whole-collection stats.
func (s *Service) List(ctx context.Context, q pagination.Query, p query.Params) ([]models.Outfit, response.Pagination, *Stats, error) {
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

	items, pag, err := pagination.Find[models.Outfit](ctx, s.coll, filter, sort, q)
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
	cursor, err := s.coll.Aggregate(ctx, []bson.M{{
		"$group": bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
			"draft": bson.M{"$sum": bson.M{"$cond": []interface{}{
				bson.M{"$eq": []interface{}{"$status", models.StatusDraft}}, 1, 0,
			}}},
			"published": bson.M{"$sum": bson.M{"$cond": []interface{}{
				bson.M{"$eq": []interface{}{"$status", models.StatusPublished}}, 1, 0,
			}}},
			"scheduled": bson.M{"$sum": bson.M{"$cond": []interface{}{
				bson.M{"$eq": []interface{}{"$status", models.StatusScheduled}}, 1, 0,
			}}},
		},
	}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category  string `bson:"_id"`
		Count     int64  `bson:"count"`
		Draft     int64  `bson:"draft"`
		Published int64  `bson:"published"`
		Scheduled int64  `bson:"scheduled"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	st := &Stats{ByCategory: map[string]int64{}}
	for _, row := range rows {
		st.Total += row.Count
		st.Draft += row.Draft
		st.Published += row.Published
		st.Scheduled += row.Scheduled
		st.ByCategory[row.Category] = row.Count
	}
	return st, nil
}

// Get resolves an outfit by hex id or slug.
func (s *Service) Get(ctx context.Context, identifier string) (*models.Outfit, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"slug": identifier}
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		filter = bson.M{"_id": id}
	}

	var o models.Outfit
	if err := s.coll.FindOne(ctx, filter).Decode(&o); err != nil {
		return nil, apperr.Translate(err)
	}
	return &o, nil
}

// GetPublished resolves a published outfit by slug for the public site.
func (s *Service) GetPublished(ctx context.Context, slugStr string) (*models.Outfit, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var o models.Outfit
	err := s.coll.FindOne(ctx, bson.M{"slug": slugStr, "status": models.StatusPublished}).Decode(&o)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &o, nil
}

// Create inserts a new outfit. The SEO block is merged under the default
// template so a partial payload comes back fully populated.
func (s *Service) Create(ctx context.Context, dto *CreateOutfitDTO) (*models.Outfit, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if !models.ValidOutfitCategory(dto.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, dto.Category)
	}
	celebrityID, err := s.resolveCelebrity(ctx, dto.Celebrity)
	if err != nil {
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

	o := models.Outfit{
		Title:       dto.Title,
		Slug:        sl,
		CelebrityID: celebrityID,
		Images:      dto.Images,
		Event:       dto.Event,
		Designer:    dto.Designer,
		Year:        dto.Year,
		Category:    dto.Category,
		Description: dto.Description,
		Tags:        dto.Tags,
		SEO:         models.MergeSEO(models.DefaultSEO(), dto.SEO),
		Publication: pub,
		Timestamps:  models.NewTimestamps(time.Now().UTC()),
	}
	if o.Tags == nil {
		o.Tags = []string{}
	}

	res, err := s.coll.InsertOne(ctx, &o)
	if err != nil {
		if errors.Is(apperr.Translate(err), apperr.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug %q already exists", apperr.ErrDuplicate, sl)
		}
		return nil, err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return &o, nil
}

// Update patches an outfit by id.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateOutfitDTO) (*models.Outfit, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != o.Slug {
		sl, err := s.resolveSlug(ctx, *dto.Slug, o.Title, o.ID)
		if err != nil {
			return nil, err
		}
		o.Slug = sl
	}
	if dto.Celebrity != nil {
		celebrityID, err := s.resolveCelebrity(ctx, *dto.Celebrity)
		if err != nil {
			return nil, err
		}
		o.CelebrityID = celebrityID
	}
	if dto.Category != nil {
		if !models.ValidOutfitCategory(*dto.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, *dto.Category)
		}
		o.Category = *dto.Category
	}
	if dto.Images != nil {
		if len(dto.Images) == 0 {
			return nil, fmt.Errorf("%w: images cannot be empty", apperr.ErrValidation)
		}
		o.Images = dto.Images
	}
	if dto.Title != nil {
		o.Title = *dto.Title
	}
	if dto.Event != nil {
		o.Event = *dto.Event
	}
	if dto.Designer != nil {
		o.Designer = *dto.Designer
	}
	if dto.Year != nil {
		o.Year = *dto.Year
	}
	if dto.Description != nil {
		o.Description = *dto.Description
	}
	if dto.Tags != nil {
		o.Tags = dto.Tags
	}
	if dto.SEO != nil {
		o.SEO = models.MergeSEO(models.DefaultSEO(), dto.SEO)
	}

	status := o.Status
	if dto.Status != nil {
		status = *dto.Status
	}
	publishAt := o.PublishAt
	if dto.PublishAt != nil {
		publishAt = dto.PublishAt
	}
	pub, err := models.NewPublication(status, publishAt)
	if err != nil {
		return nil, err
	}
	o.Publication = pub
	o.UpdatedAt = time.Now().UTC()

	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": o.ID}, o); err != nil {
		if errors.Is(apperr.Translate(err), apperr.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug %q already exists", apperr.ErrDuplicate, o.Slug)
		}
		return nil, err
	}
	return o, nil
}

// Delete permanently removes an outfit.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: outfit %q", apperr.ErrNotFound, id)
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: outfit %q", apperr.ErrNotFound, id)
	}
	return nil
}

// IncrementViews bumps the outfit view counter. Called fire-and-forget.
func (s *Service) IncrementViews(id primitive.ObjectID) error {
	ctx, cancel := database.WithTimeout(context.Background())
	defer cancel()
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// resolveCelebrity checks the referenced celebrity exists.
func (s *Service) resolveSlug(ctx context.Context, supplied, title string, excludeID primitive.ObjectID) (string, error) {
	return slug.Resolve(ctx, supplied, title, func(ctx context.Context, sl string) (bool, error) {
		return database.SlugTaken(ctx, s.coll, sl, excludeID)
	})
}

func (s *Service) resolveCelebrity(ctx context.Context, raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid celebrity id %q", apperr.ErrValidation, raw)
	}
	n, err := s.celebrities.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if n == 0 {
		return primitive.NilObjectID, fmt.Errorf("%w: celebrity %q does not exist", apperr.ErrValidation, raw)
	}
	return id, nil
}
