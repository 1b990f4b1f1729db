package mongo

import (
	"context"

	"alerta-vecinal/internal/logger"
	"alerta-vecinal/internal/services/news"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewsRepo implements the news.Repository interface for MongoDB
type NewsRepo struct {
	collection *mongo.Collection
}

// NewNewsRepo creates a new news repository backed by the "noticias"
// collection, indexed for newest-first listing.
func NewNewsRepo(ctx context.Context, db *mongo.Database) *NewsRepo {
	collection := db.Collection("noticias")

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "fecha", Value: -1}},
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.L().Error("failed to create index", "collection", "noticias", "error", err)
	}

	return &NewsRepo{
		collection: collection,
	}
}

// Create inserts a new news item
func (r *NewsRepo) Create(ctx context.Context, item *news.NewsItem) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// List returns every news item, newest first
func (r *NewsRepo) List(ctx context.Context) ([]*news.NewsItem, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []*news.NewsItem
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
