package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

const collectionName = "orders"

// MongoOrderRepository implements ports.OrderRepository on MongoDB.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates the repository and its supporting index.
func NewMongoOrderRepository(ctx context.Context, db *mongo.Database) (*MongoOrderRepository, error) {
	collection := db.Collection(collectionName)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order index: %w", err)
	}

	return &MongoOrderRepository{collection: collection}, nil
}

// Add inserts a new order document.
func (r *MongoOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, fromDomain(aggregate)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// Update replaces the stored document, guarded by the version the aggregate
// was loaded with. The stored version is bumped on success; a filter miss
// means a concurrent writer won and surfaces as a version conflict.
func (r *MongoOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromDomain(aggregate)
	loadedVersion := doc.Version
	doc.Version = loadedVersion + 1

	result, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": doc.ID, "version": loadedVersion},
		doc,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.MatchedCount == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("stored order %s does not match version %d", doc.ID, loadedVersion),
		)
	}

	return nil
}

// Get retrieves an order by its identifier.
func (r *MongoOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var doc orderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return toDomain(doc)
}
