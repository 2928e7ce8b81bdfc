package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stargazed/core/internal/config"
)

// Collection names.
const (
	CollUsers       = "users"
	CollCelebrities = "celebrities"
	CollOutfits     = "outfits"
	CollMovies      = "movies"
	CollNews        = "news"
	CollBlogs       = "blogs"
	CollReviews     = "movie_reviews"
)

const opTimeout = 5 * time.Second

// Connect opens the pooled client, verifies connectivity and ensures the
// unique indexes that back the slug/email invariants.
func Connect(cfg *config.AppConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return db, nil
}

// Disconnect closes the pooled client behind a database handle.
func Disconnect(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client().Disconnect(ctx)
}

// WithTimeout derives a per-operation context so a slow store call cannot
// hold a request open indefinitely.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// SlugTaken reports whether slug is already used by a different document in
// the collection. Pass a zero ObjectID on create.
func SlugTaken(ctx context.Context, coll *mongo.Collection, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := coll.CountDocuments(ctx, filter)
	return n > 0, err
}

// ensureIndexes creates the unique indexes closing the check-then-write race
// on slugs and emails, plus the secondary indexes the list endpoints lean on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	slugIndexed := []string{CollCelebrities, CollOutfits, CollMovies, CollNews, CollBlogs, CollReviews}
	for _, coll := range slugIndexed {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("%s slug index: %w", coll, err)
		}
	}

	if _, err := db.Collection(CollUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	secondary := []struct {
		coll string
		keys bson.D
	}{
		{CollCelebrities, bson.D{{Key: "status", Value: 1}}},
		{CollOutfits, bson.D{{Key: "celebrityId", Value: 1}}},
		{CollOutfits, bson.D{{Key: "category", Value: 1}}},
		{CollMovies, bson.D{{Key: "genre", Value: 1}}},
		{CollNews, bson.D{{Key: "celebrityId", Value: 1}}},
		{CollNews, bson.D{{Key: "category", Value: 1}}},
	}
	for _, idx := range secondary {
		if _, err := db.Collection(idx.coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys}); err != nil {
			return fmt.Errorf("%s index: %w", idx.coll, err)
		}
	}
	return nil
}
