// Package productrepo persists product aggregates as MongoDB documents,
// including their embedded ratings and variants.
package productrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

type productDocument struct {
	ID            string            `bson:"_id"`
	Name          string            `bson:"name"`
	Description   string            `bson:"description"`
	Price         float64           `bson:"price"`
	CategoryID    string            `bson:"category_id"`
	Stock         int               `bson:"stock"`
	Brand         string            `bson:"brand"`
	Images        []string          `bson:"images"`
	Ratings       []ratingDocument  `bson:"ratings"`
	AverageRating float64           `bson:"average_rating"`
	Variants      []variantDocument `bson:"variants"`
	IsActive      bool              `bson:"is_active"`
	CreatedAt     time.Time         `bson:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at"`
}

type ratingDocument struct {
	UserID  string `bson:"user_id"`
	Value   int    `bson:"value"`
	Comment string `bson:"comment,omitempty"`
}

type variantDocument struct {
	ID              string  `bson:"id"`
	Color           string  `bson:"color,omitempty"`
	Size            string  `bson:"size,omitempty"`
	AdditionalPrice float64 `bson:"additional_price"`
}

func fromDomain(aggregate *product.Product) productDocument {
	ratings := make([]ratingDocument, 0, len(aggregate.Ratings()))
	for _, rating := range aggregate.Ratings() {
		ratings = append(ratings, ratingDocument{
			UserID:  rating.UserID.String(),
			Value:   rating.Value,
			Comment: rating.Comment,
		})
	}

	variants := make([]variantDocument, 0, len(aggregate.Variants()))
	for _, variant := range aggregate.Variants() {
		variants = append(variants, variantDocument{
			ID:              variant.ID.String(),
			Color:           variant.Color,
			Size:            variant.Size,
			AdditionalPrice: variant.AdditionalPrice,
		})
	}

	return productDocument{
		ID:            aggregate.ID().String(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price(),
		CategoryID:    aggregate.CategoryID().String(),
		Stock:         aggregate.Stock(),
		Brand:         aggregate.Brand(),
		Images:        aggregate.Images(),
		Ratings:       ratings,
		AverageRating: aggregate.AverageRating(),
		Variants:      variants,
		IsActive:      aggregate.IsActive(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(doc productDocument) (*product.Product, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromString(doc.CategoryID)
	if err != nil {
		return nil, err
	}

	ratings := make([]product.Rating, 0, len(doc.Ratings))
	for _, ratingDoc := range doc.Ratings {
		userID, ratingErr := kernel.UUIDFromString(ratingDoc.UserID)
		if ratingErr != nil {
			return nil, ratingErr
		}

		ratings = append(ratings, product.Rating{
			UserID:  userID,
			Value:   ratingDoc.Value,
			Comment: ratingDoc.Comment,
		})
	}

	variants := make([]product.Variant, 0, len(doc.Variants))
	for _, variantDoc := range doc.Variants {
		variantID, variantErr := kernel.UUIDFromString(variantDoc.ID)
		if variantErr != nil {
			return nil, variantErr
		}

		variants = append(variants, product.Variant{
			ID:              variantID,
			Color:           variantDoc.Color,
			Size:            variantDoc.Size,
			AdditionalPrice: variantDoc.AdditionalPrice,
		})
	}

	return product.RestoreProduct(
		id, doc.Name, doc.Description, doc.Price, categoryID,
		doc.Stock, doc.Brand, doc.Images,
		ratings, variants,
		doc.IsActive,
		doc.CreatedAt, doc.UpdatedAt,
	)
}
