package productrepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

const collectionName = "products"

// MongoProductRepository implements ports.ProductRepository on MongoDB.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates the repository and its listing indexes.
// The query side filters active products by category, brand and price, so
// those fields get secondary indexes here on the write side.
func NewMongoProductRepository(ctx context.Context, db *mongo.Database) (*MongoProductRepository, error) {
	collection := db.Collection(collectionName)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "price", Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product indexes: %w", err)
	}

	return &MongoProductRepository{collection: collection}, nil
}

// Add inserts a new product document.
func (r *MongoProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, fromDomain(aggregate)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValueIsInvalidErrorWithCause("product id", err)
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// Update replaces the stored document.
func (r *MongoProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromDomain(aggregate)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("product", doc.ID)
	}

	return nil
}

// Get retrieves a product by its identifier.
func (r *MongoProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return toDomain(doc)
}
