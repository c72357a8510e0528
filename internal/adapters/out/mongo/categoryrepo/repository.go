package categoryrepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commerce/internal/core/domain/model/category"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

const collectionName = "categories"

// MongoCategoryRepository implements ports.CategoryRepository on MongoDB.
type MongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewMongoCategoryRepository creates the repository and the unique name and
// slug indexes.
func NewMongoCategoryRepository(ctx context.Context, db *mongo.Database) (*MongoCategoryRepository, error) {
	collection := db.Collection(collectionName)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category indexes: %w", err)
	}

	return &MongoCategoryRepository{collection: collection}, nil
}

// Add inserts a new category document. A duplicate name or slug surfaces as
// a value-is-invalid error.
func (r *MongoCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, fromDomain(aggregate)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValueIsInvalidErrorWithCause("category name", errors.New("name or slug is already taken"))
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// Update replaces the stored document.
func (r *MongoCategoryRepository) Update(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromDomain(aggregate)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValueIsInvalidErrorWithCause("category name", errors.New("name or slug is already taken"))
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("category", doc.ID)
	}

	return nil
}

// Delete removes a category by its identifier.
func (r *MongoCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("category", id.String())
	}

	return nil
}

// Get retrieves a category by its identifier.
func (r *MongoCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var doc categoryDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return toDomain(doc)
}
