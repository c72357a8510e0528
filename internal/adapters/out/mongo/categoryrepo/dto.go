// Package categoryrepo persists category aggregates as MongoDB documents.
// Unique indexes on name and slug back the uniqueness rules the domain
// cannot enforce on its own.
package categoryrepo

import (
	"time"

	"commerce/internal/core/domain/model/category"
	"commerce/internal/core/domain/model/kernel"
)

type categoryDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Slug        string    `bson:"slug"`
	ParentID    *string   `bson:"parent_id,omitempty"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func fromDomain(aggregate *category.Category) categoryDocument {
	var parentID *string
	if parent := aggregate.ParentID(); parent != nil {
		raw := parent.String()
		parentID = &raw
	}

	return categoryDocument{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Slug:        aggregate.Slug(),
		ParentID:    parentID,
		IsActive:    aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(doc categoryDocument) (*category.Category, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if doc.ParentID != nil {
		parsed, parentErr := kernel.UUIDFromString(*doc.ParentID)
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &parsed
	}

	return category.RestoreCategory(
		id, doc.Name, doc.Description, doc.Slug,
		parentID, doc.IsActive,
		doc.CreatedAt, doc.UpdatedAt,
	)
}
