package mongo

import (
	"context"

	"alerta-vecinal/internal/logger"
	"alerta-vecinal/internal/services/reports"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ReportsRepo implements the reports.Repository interface for MongoDB
type ReportsRepo struct {
	collection *mongo.Collection
}

// NewReportsRepo creates a new reports repository backed by the "reportes"
// collection, with a compound index supporting the per-user newest-first
// listing.
func NewReportsRepo(ctx context.Context, db *mongo.Database) *ReportsRepo {
	collection := db.Collection("reportes")

	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "usuarioId", Value: 1},
			{Key: "fecha", Value: -1},
		},
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.L().Error("failed to create index", "collection", "reportes", "error", err)
	}

	return &ReportsRepo{
		collection: collection,
	}
}

// Create inserts a new report
func (r *ReportsRepo) Create(ctx context.Context, report *reports.Report) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// ListByUsuario returns all reports with an exact usuarioId match, newest first
func (r *ReportsRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]*reports.Report, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"usuarioId": usuarioID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []*reports.Report
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
