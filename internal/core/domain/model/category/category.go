package category

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 500
)

var whitespacePattern = regexp.MustCompile(`\s+`)

var (
	// ErrCategoryIsNotConstructed is returned when a Category instance was not
	// created through NewCategory or RestoreCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")
)

// Category groups catalog products. A category may nest under a parent
// category; the hierarchy has no enforced depth limit.
type Category struct {
	id          kernel.UUID
	name        string
	description string
	slug        string
	parentID    *kernel.UUID
	active      bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// Slugify derives a URL slug from a category name: lowercased with whitespace
// runs collapsed to single dashes.
func Slugify(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// NewCategory creates an active category. The slug is derived from the name.
func NewCategory(
	id kernel.UUID,
	name, description string,
	parentID *kernel.UUID,
	now time.Time,
) (*Category, error) {
	c := &Category{
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setDescription(description),
		c.setParentID(parentID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a category from persistence. The stored slug is
// kept as is; documents written before a rename keep resolving.
func RestoreCategory(
	id kernel.UUID,
	name, description, slug string,
	parentID *kernel.UUID,
	active bool,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	c := &Category{
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setDescription(description),
		c.setParentID(parentID),
	); err != nil {
		return nil, err
	}

	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}
	c.slug = slug

	return c, nil
}

// Validate ensures the Category was created through a constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the category description, possibly empty.
func (c *Category) Description() string {
	return c.description
}

// Slug returns the URL slug.
func (c *Category) Slug() string {
	return c.slug
}

// ParentID returns the parent category's identifier, or nil for a root category.
func (c *Category) ParentID() *kernel.UUID {
	return c.parentID
}

// IsActive reports whether the category is visible in the catalog.
func (c *Category) IsActive() bool {
	return c.active
}

// CreatedAt returns the creation timestamp.
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// Update replaces the category's fields. A rename re-derives the slug.
func (c *Category) Update(
	name, description string,
	parentID *kernel.UUID,
	active bool,
	now time.Time,
) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		c.setName(name),
		c.setDescription(description),
		c.setParentID(parentID),
	); err != nil {
		return err
	}

	c.active = active
	c.updatedAt = now
	return nil
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"category name",
			fmt.Errorf("cannot exceed %d characters", maxNameLength),
		)
	}
	c.name = name
	c.slug = Slugify(name)
	return nil
}

func (c *Category) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"category description",
			fmt.Errorf("cannot exceed %d characters", maxDescriptionLength),
		)
	}
	c.description = description
	return nil
}

func (c *Category) setParentID(parentID *kernel.UUID) error {
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return err
		}
		if parentID.IsEqual(c.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"parent category",
				errors.New("category cannot be its own parent"),
			)
		}
	}
	c.parentID = parentID
	return nil
}
