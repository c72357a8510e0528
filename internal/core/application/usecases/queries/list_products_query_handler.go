package queries

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productReadModel mirrors the product document layout written by the
// productrepo adapter, reduced to the fields the listing exposes.
type productReadModel struct {
	ID            string   `bson:"_id"`
	Name          string   `bson:"name"`
	Description   string   `bson:"description"`
	Price         float64  `bson:"price"`
	CategoryID    string   `bson:"category_id"`
	Stock         int      `bson:"stock"`
	Brand         string   `bson:"brand"`
	Images        []string `bson:"images"`
	AverageRating float64  `bson:"average_rating"`
	Ratings       []bson.M `bson:"ratings"`
}

// ListProductsQueryHandler lists active catalog products straight from the
// document store with server-side filtering, sorting and pagination.
type ListProductsQueryHandler struct {
	db *mongo.Database
}

// NewListProductsQueryHandler creates a handler for catalog listings.
func NewListProductsQueryHandler(db *mongo.Database) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the listing. Only active products are returned.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (ListProductsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsResponse{}, err
	}

	filter := h.buildFilter(query)
	collection := h.db.Collection("products")

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return ListProductsResponse{}, fmt.Errorf("failed to count products: %w", err)
	}

	sortDirection := 1
	if query.descending {
		sortDirection = -1
	}

	cursor, err := collection.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: query.sortField, Value: sortDirection}}).
		SetSkip((query.page-1)*query.limit).
		SetLimit(query.limit))
	if err != nil {
		return ListProductsResponse{}, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]ProductResponse, 0)
	for cursor.Next(ctx) {
		var doc productReadModel
		if err = cursor.Decode(&doc); err != nil {
			return ListProductsResponse{}, fmt.Errorf("failed to decode product: %w", err)
		}

		products = append(products, ProductResponse{
			ID:            doc.ID,
			Name:          doc.Name,
			Description:   doc.Description,
			Price:         doc.Price,
			CategoryID:    doc.CategoryID,
			Stock:         doc.Stock,
			Brand:         doc.Brand,
			Images:        doc.Images,
			AverageRating: doc.AverageRating,
			RatingCount:   len(doc.Ratings),
		})
	}
	if err = cursor.Err(); err != nil {
		return ListProductsResponse{}, fmt.Errorf("failed to iterate products: %w", err)
	}

	pages := total / query.limit
	if total%query.limit != 0 {
		pages++
	}

	return ListProductsResponse{
		Products: products,
		Total:    total,
		Page:     query.page,
		Pages:    pages,
	}, nil
}

func (h ListProductsQueryHandler) buildFilter(query ListProductsQuery) bson.M {
	filter := bson.M{"is_active": true}

	if query.categoryID != nil {
		filter["category_id"] = query.categoryID.String()
	}
	if query.brand != "" {
		filter["brand"] = query.brand
	}

	price := bson.M{}
	if query.minPrice != nil {
		price["$gte"] = *query.minPrice
	}
	if query.maxPrice != nil {
		price["$lte"] = *query.maxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if query.search != "" {
		pattern := primitive.Regex{Pattern: query.search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	return filter
}
