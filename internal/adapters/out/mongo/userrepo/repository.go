package userrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/errs"
)

const collectionName = "users"

// MongoUserRepository implements ports.UserRepository on MongoDB.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates the repository and the unique email index.
func NewMongoUserRepository(ctx context.Context, db *mongo.Database) (*MongoUserRepository, error) {
	collection := db.Collection(collectionName)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user index: %w", err)
	}

	return &MongoUserRepository{collection: collection}, nil
}

// Add inserts a new user document. A duplicate email surfaces as a
// value-is-invalid error so signup can report it without leaking store
// internals.
func (r *MongoUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, fromDomain(aggregate)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValueIsInvalidErrorWithCause("email", errors.New("email is already registered"))
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// Update replaces the stored document.
func (r *MongoUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromDomain(aggregate)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValueIsInvalidErrorWithCause("email", errors.New("email is already registered"))
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("user", doc.ID)
	}

	return nil
}

// Get retrieves a user by identifier.
func (r *MongoUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.findOne(ctx, bson.M{"_id": id.String()}, id.String())
}

// GetByEmail retrieves a user by normalized email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return r.findOne(ctx, bson.M{"email": email}, email)
}

// GetByResetToken retrieves the user holding a pending, unexpired reset token.
func (r *MongoUserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*user.User, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("reset token")
	}

	filter := bson.M{
		"reset_token":            token,
		"reset_token_expires_at": bson.M{"$gt": now},
	}

	return r.findOne(ctx, filter, "by reset token")
}

// PurgeExpiredResetTokens clears every reset token whose expiry lies before
// now and reports how many users were affected.
func (r *MongoUserRepository) PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"reset_token_expires_at": bson.M{"$lte": now}},
		bson.M{"$unset": bson.M{"reset_token": "", "reset_token_expires_at": ""}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge reset tokens: %w", err)
	}

	return result.ModifiedCount, nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, id string) (*user.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return toDomain(doc)
}
