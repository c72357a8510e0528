package queries

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commerce/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery retrieves every catalog category, active or not,
// sorted by name.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a parameterless category listing query.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// CategoryResponse is one category in a listing or single-category read.
type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Slug        string  `json:"slug"`
	ParentID    *string `json:"parentId,omitempty"`
	IsActive    bool    `json:"isActive"`
}

type categoryReadModel struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Slug        string  `bson:"slug"`
	ParentID    *string `bson:"parent_id"`
	IsActive    bool    `bson:"is_active"`
}

func (d categoryReadModel) toResponse() CategoryResponse {
	return CategoryResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Slug:        d.Slug,
		ParentID:    d.ParentID,
		IsActive:    d.IsActive,
	}
}

// ListCategoriesQueryHandler lists categories from the document store.
type ListCategoriesQueryHandler struct {
	db *mongo.Database
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(db *mongo.Database) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the listing.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cursor, err := h.db.Collection("categories").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]CategoryResponse, 0)
	for cursor.Next(ctx) {
		var doc categoryReadModel
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, doc.toResponse())
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}
