package queries

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// sortableProductFields whitelists the fields the catalog may be sorted by.
// Anything else is rejected at construction so user input can never reach the
// sort clause unchecked.
var sortableProductFields = map[string]string{
	"name":          "name",
	"price":         "price",
	"createdAt":     "created_at",
	"averageRating": "average_rating",
}

// ListProductsQuery is a paginated, filtered catalog listing. Zero values mean
// "no filter"; page and limit fall back to defaults when unset.
type ListProductsQuery struct {
	page  int64
	limit int64

	categoryID *kernel.UUID
	brand      string
	minPrice   *float64
	maxPrice   *float64
	search     string

	sortField  string
	descending bool

	guard guard.ConstructorGuard
}

// ListProductsFilter carries the optional filter arguments for
// NewListProductsQuery.
type ListProductsFilter struct {
	CategoryID *kernel.UUID
	Brand      string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	SortBy     string
	Descending bool
}

// NewListProductsQuery creates a catalog listing query.
// Page and limit default to 1 and 10; limit is capped at 100.
func NewListProductsQuery(page, limit int64, filter ListProductsFilter) (ListProductsQuery, error) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxLimit)
	}

	sortField := "created_at"
	if filter.SortBy != "" {
		mapped, ok := sortableProductFields[filter.SortBy]
		if !ok {
			return ListProductsQuery{}, errs.NewValueIsInvalidErrorWithCause(
				"sort field",
				fmt.Errorf("%q is not sortable", filter.SortBy),
			)
		}
		sortField = mapped
	}

	if filter.CategoryID != nil {
		if err := filter.CategoryID.Validate(); err != nil {
			return ListProductsQuery{}, err
		}
	}
	if filter.MinPrice != nil && *filter.MinPrice < 0 {
		return ListProductsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"min price",
			fmt.Errorf("%v is negative", *filter.MinPrice),
		)
	}
	if filter.MaxPrice != nil && filter.MinPrice != nil && *filter.MaxPrice < *filter.MinPrice {
		return ListProductsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"max price",
			fmt.Errorf("%v is below min price %v", *filter.MaxPrice, *filter.MinPrice),
		)
	}

	return ListProductsQuery{
		page:       page,
		limit:      limit,
		categoryID: filter.CategoryID,
		brand:      filter.Brand,
		minPrice:   filter.MinPrice,
		maxPrice:   filter.MaxPrice,
		search:     filter.Search,
		sortField:  sortField,
		descending: filter.Descending,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListProductsQuery) Page() int64 { return q.page }

// Limit returns the page size.
func (q ListProductsQuery) Limit() int64 { return q.limit }

// ProductResponse is one catalog entry in the listing.
type ProductResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	CategoryID    string   `json:"categoryId"`
	Stock         int      `json:"stock"`
	Brand         string   `json:"brand"`
	Images        []string `json:"images"`
	AverageRating float64  `json:"averageRating"`
	RatingCount   int      `json:"ratingCount"`
}

// ListProductsResponse is the paginated listing result.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int64             `json:"page"`
	Pages    int64             `json:"pages"`
}
