package queries

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetCategoryQueryIsNotConstructed = errors.New(
	"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
)

// GetCategoryQuery retrieves one category by identifier.
type GetCategoryQuery struct {
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery creates a single-category read query.
func NewGetCategoryQuery(categoryID kernel.UUID) (GetCategoryQuery, error) {
	if err := categoryID.Validate(); err != nil {
		return GetCategoryQuery{}, err
	}

	return GetCategoryQuery{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

// CategoryID returns the identifier being read.
func (q GetCategoryQuery) CategoryID() kernel.UUID { return q.categoryID }

// GetCategoryQueryHandler reads one category from the document store.
type GetCategoryQueryHandler struct {
	db *mongo.Database
}

// NewGetCategoryQueryHandler creates a handler for single-category reads.
func NewGetCategoryQueryHandler(db *mongo.Database) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

// Handle executes the read.
func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return CategoryResponse{}, err
	}

	var doc categoryReadModel
	err := h.db.Collection("categories").
		FindOne(ctx, bson.M{"_id": query.categoryID.String()}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CategoryResponse{}, errs.NewObjectNotFoundError("category", query.categoryID.String())
		}
		return CategoryResponse{}, fmt.Errorf("failed to find category: %w", err)
	}

	return doc.toResponse(), nil
}
