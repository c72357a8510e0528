package category_test

import (
	"strings"
	"testing"
	"time"

	"commerce/internal/core/domain/model/category"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	testCases := map[string]string{
		"Electronics":        "electronics",
		"Home  Appliances":   "home-appliances",
		"  Garden Tools ":    "garden-tools",
		"USB-C Cables":       "usb-c-cables",
		"Books\tand\nMedia":  "books-and-media",
	}

	for input, expected := range testCases {
		assert.Equal(t, expected, category.Slugify(input), "input: %q", input)
	}
}

func TestNewCategory(t *testing.T) {
	t.Run("should create active category with derived slug", func(t *testing.T) {
		id := kernel.NewUUID()
		now := time.Now().UTC()

		c, err := category.NewCategory(id, "Home Appliances", "Large and small appliances.", nil, now)

		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Home Appliances", c.Name())
		assert.Equal(t, "home-appliances", c.Slug())
		assert.Nil(t, c.ParentID())
		assert.True(t, c.IsActive())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("should accept a parent category", func(t *testing.T) {
		parentID := kernel.NewUUID()

		c, err := category.NewCategory(kernel.NewUUID(), "Blenders", "", &parentID, time.Now().UTC())

		require.NoError(t, err)
		require.NotNil(t, c.ParentID())
		assert.True(t, c.ParentID().IsEqual(parentID))
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := category.NewCategory(kernel.NewUUID(), "  ", "", nil, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject name longer than fifty characters", func(t *testing.T) {
		_, err := category.NewCategory(
			kernel.NewUUID(), strings.Repeat("a", 51), "", nil, time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject description longer than five hundred characters", func(t *testing.T) {
		_, err := category.NewCategory(
			kernel.NewUUID(), "Tools", strings.Repeat("a", 501), nil, time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject self as parent", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := category.NewCategory(id, "Tools", "", &id, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCategory_Update(t *testing.T) {
	t.Run("rename re-derives the slug", func(t *testing.T) {
		c, err := category.NewCategory(kernel.NewUUID(), "Home Appliances", "", nil, time.Now().UTC())
		require.NoError(t, err)
		now := time.Now().UTC().Add(time.Minute)

		err = c.Update("Kitchen Appliances", "Updated.", nil, false, now)

		require.NoError(t, err)
		assert.Equal(t, "Kitchen Appliances", c.Name())
		assert.Equal(t, "kitchen-appliances", c.Slug())
		assert.Equal(t, "Updated.", c.Description())
		assert.False(t, c.IsActive())
		assert.Equal(t, now, c.UpdatedAt())
	})
}

func TestRestoreCategory(t *testing.T) {
	t.Run("keeps the stored slug", func(t *testing.T) {
		now := time.Now().UTC()

		c, err := category.RestoreCategory(
			kernel.NewUUID(), "Kitchen Appliances", "", "home-appliances", nil, true, now, now,
		)

		require.NoError(t, err)
		assert.Equal(t, "home-appliances", c.Slug())
	})

	t.Run("should reject empty slug", func(t *testing.T) {
		now := time.Now().UTC()

		_, err := category.RestoreCategory(
			kernel.NewUUID(), "Tools", "", "", nil, true, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCategory_Validate(t *testing.T) {
	var c category.Category

	assert.ErrorIs(t, c.Validate(), category.ErrCategoryIsNotConstructed)
}
