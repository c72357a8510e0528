package product

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
	maxNameLength        = 100
	maxDescriptionLength = 1000
	maxCommentLength     = 500
	minRating            = 1
	maxRating            = 5
)

var imagePattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Rating is one customer's score for a product.
type Rating struct {
	UserID  kernel.UUID
	Value   int
	Comment string
}

// Validate checks the rating score and comment length.
func (r Rating) Validate() error {
	if err := r.UserID.Validate(); err != nil {
		return err
	}
	if r.Value < minRating || r.Value > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", r.Value, minRating, maxRating)
	}
	if len(r.Comment) > maxCommentLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"rating comment",
			fmt.Errorf("cannot exceed %d characters", maxCommentLength),
		)
	}
	return nil
}

// Variant is a sellable variation of a product. All fields are optional;
// the additional price may not be negative.
type Variant struct {
	ID              kernel.UUID
	Color           string
	Size            string
	AdditionalPrice float64
}

// Validate checks the variant identity and price delta.
func (v Variant) Validate() error {
	if err := v.ID.Validate(); err != nil {
		return err
	}
	if v.AdditionalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"variant additional price",
			fmt.Errorf("%v is negative", v.AdditionalPrice),
		)
	}
	return nil
}

// Product is the catalog aggregate. The average rating is derived from the
// ratings list and recomputed whenever a rating is added; it is never set
// directly from outside.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	categoryID  kernel.UUID
	stock       int
	brand       string
	images      []string
	ratings     []Rating
	avgRating   float64
	variants    []Variant
	active      bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewProduct creates an active product with no ratings.
func NewProduct(
	id kernel.UUID,
	name, description string,
	price float64,
	categoryID kernel.UUID,
	stock int,
	brand string,
	images []string,
	variants []Variant,
	now time.Time,
) (*Product, error) {
	p := &Product{
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
		p.setCategoryID(categoryID),
		p.setStock(stock),
		p.setBrand(brand),
		p.setImages(images),
		p.setVariants(variants),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// ratings and activity flag. The stored average rating is recomputed from the
// ratings list so the derived value can never drift from its source.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	price float64,
	categoryID kernel.UUID,
	stock int,
	brand string,
	images []string,
	ratings []Rating,
	variants []Variant,
	active bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
		p.setCategoryID(categoryID),
		p.setStock(stock),
		p.setBrand(brand),
		p.setImages(images),
		p.setRatings(ratings),
		p.setVariants(variants),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the base price.
func (p *Product) Price() float64 {
	return p.price
}

// CategoryID returns the identifier of the product's category.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

// Stock returns the available stock quantity.
func (p *Product) Stock() int {
	return p.stock
}

// Brand returns the product brand.
func (p *Product) Brand() string {
	return p.brand
}

// Images returns a copy of the image URLs.
func (p *Product) Images() []string {
	images := make([]string, len(p.images))
	copy(images, p.images)
	return images
}

// Ratings returns a copy of the customer ratings.
func (p *Product) Ratings() []Rating {
	ratings := make([]Rating, len(p.ratings))
	copy(ratings, p.ratings)
	return ratings
}

// AverageRating returns the derived mean of all rating scores, 0 when unrated.
func (p *Product) AverageRating() float64 {
	return p.avgRating
}

// Variants returns a copy of the sales variants.
func (p *Product) Variants() []Variant {
	variants := make([]Variant, len(p.variants))
	copy(variants, p.variants)
	return variants
}

// IsActive reports whether the product is visible in the catalog.
func (p *Product) IsActive() bool {
	return p.active
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update replaces the descriptive fields of the product. Ratings and the
// average rating are not updatable through this method.
func (p *Product) Update(
	name, description string,
	price float64,
	categoryID kernel.UUID,
	stock int,
	brand string,
	images []string,
	variants []Variant,
	active bool,
	now time.Time,
) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
		p.setCategoryID(categoryID),
		p.setStock(stock),
		p.setBrand(brand),
		p.setImages(images),
		p.setVariants(variants),
	); err != nil {
		return err
	}

	p.active = active
	p.updatedAt = now
	return nil
}

// AdjustStock applies a signed stock delta. The resulting stock may not go
// negative.
func (p *Product) AdjustStock(delta int, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	newStock := p.stock + delta
	if newStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("change of %d would leave %d", delta, newStock),
		)
	}

	p.stock = newStock
	p.updatedAt = now
	return nil
}

// AddRating appends a customer rating and recomputes the average.
func (p *Product) AddRating(rating Rating, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := rating.Validate(); err != nil {
		return err
	}

	p.ratings = append(p.ratings, rating)
	p.recomputeAverageRating()
	p.updatedAt = now
	return nil
}

// Deactivate hides the product from the catalog without deleting it.
func (p *Product) Deactivate(now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.active = false
	p.updatedAt = now
	return nil
}

func (p *Product) recomputeAverageRating() {
	if len(p.ratings) == 0 {
		p.avgRating = 0
		return
	}

	var sum int
	for _, r := range p.ratings {
		sum += r.Value
	}
	p.avgRating = float64(sum) / float64(len(p.ratings))
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"product name",
			fmt.Errorf("cannot exceed %d characters", maxNameLength),
		)
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("product description")
	}
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"product description",
			fmt.Errorf("cannot exceed %d characters", maxDescriptionLength),
		)
	}
	p.description = description
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product price",
			fmt.Errorf("%v is negative", price),
		)
	}
	p.price = price
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product stock",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}

func (p *Product) setBrand(brand string) error {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return errs.NewValueIsRequiredError("product brand")
	}
	p.brand = brand
	return nil
}

func (p *Product) setImages(images []string) error {
	for _, image := range images {
		if !imagePattern.MatchString(image) {
			return errs.NewValueIsInvalidErrorWithCause(
				"product image",
				fmt.Errorf("%q has an unsupported format", image),
			)
		}
	}
	p.images = make([]string, len(images))
	copy(p.images, images)
	return nil
}

func (p *Product) setRatings(ratings []Rating) error {
	for _, rating := range ratings {
		if err := rating.Validate(); err != nil {
			return err
		}
	}
	p.ratings = make([]Rating, len(ratings))
	copy(p.ratings, ratings)
	p.recomputeAverageRating()
	return nil
}

func (p *Product) setVariants(variants []Variant) error {
	for _, variant := range variants {
		if err := variant.Validate(); err != nil {
			return err
		}
	}
	p.variants = make([]Variant, len(variants))
	copy(p.variants, variants)
	return nil
}
