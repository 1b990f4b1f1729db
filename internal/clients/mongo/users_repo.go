package mongo

import (
	"context"
	"errors"

	"alerta-vecinal/internal/logger"
	"alerta-vecinal/internal/services/auth"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UsersRepo implements the auth.UsersRepo interface for MongoDB
type UsersRepo struct {
	collection *mongo.Collection
}

// NewUsersRepo creates a new users repository backed by the "usuarios"
// collection. The unique index on email is the hard backstop for the
// registration duplicate check; a failure to create it is logged but does
// not stop the process (the database may simply be down at boot).
func NewUsersRepo(ctx context.Context, db *mongo.Database) *UsersRepo {
	collection := db.Collection("usuarios")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.L().Error("failed to create unique email index", "collection", "usuarios", "error", err)
	}

	return &UsersRepo{
		collection: collection,
	}
}

// Create inserts a new user. A duplicate email is reported as auth.ErrDuplicate.
func (r *UsersRepo) Create(ctx context.Context, user *auth.User) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return auth.ErrDuplicate
		}
		return err
	}

	return nil
}

// FindByEmail finds a user by (already normalized) email address
func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var user auth.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return &user, nil
}
