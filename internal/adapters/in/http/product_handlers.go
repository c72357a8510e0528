package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

type productRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	CategoryID  string           `json:"categoryId"`
	Stock       int              `json:"stock"`
	Brand       string           `json:"brand"`
	Images      []string         `json:"images"`
	Variants    []variantRequest `json:"variants"`
	IsActive    *bool            `json:"isActive"`
}

type variantRequest struct {
	ID              string  `json:"id"`
	Color           string  `json:"color"`
	Size            string  `json:"size"`
	AdditionalPrice float64 `json:"additionalPrice"`
}

type adjustStockRequest struct {
	Delta int `json:"delta"`
}

type productDetailResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	CategoryID    string            `json:"categoryId"`
	Stock         int               `json:"stock"`
	Brand         string            `json:"brand"`
	Images        []string          `json:"images"`
	Variants      []variantResponse `json:"variants"`
	AverageRating float64           `json:"averageRating"`
	RatingCount   int               `json:"ratingCount"`
	IsActive      bool              `json:"isActive"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type variantResponse struct {
	ID              string  `json:"id"`
	Color           string  `json:"color"`
	Size            string  `json:"size"`
	AdditionalPrice float64 `json:"additionalPrice"`
}

func productToResponse(aggregate *product.Product) productDetailResponse {
	variants := make([]variantResponse, 0, len(aggregate.Variants()))
	for _, variant := range aggregate.Variants() {
		variants = append(variants, variantResponse{
			ID:              variant.ID.String(),
			Color:           variant.Color,
			Size:            variant.Size,
			AdditionalPrice: variant.AdditionalPrice,
		})
	}

	return productDetailResponse{
		ID:            aggregate.ID().String(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price(),
		CategoryID:    aggregate.CategoryID().String(),
		Stock:         aggregate.Stock(),
		Brand:         aggregate.Brand(),
		Images:        aggregate.Images(),
		Variants:      variants,
		AverageRating: aggregate.AverageRating(),
		RatingCount:   len(aggregate.Ratings()),
		IsActive:      aggregate.IsActive(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// variantsFromRequest maps variant payloads, minting identifiers for variants
// the client did not name.
func variantsFromRequest(reqs []variantRequest) ([]product.Variant, error) {
	variants := make([]product.Variant, 0, len(reqs))
	for _, req := range reqs {
		id := kernel.NewUUID()
		if req.ID != "" {
			parsed, err := kernel.UUIDFromString(req.ID)
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("variant id", err)
			}
			id = parsed
		}

		variants = append(variants, product.Variant{
			ID:              id,
			Color:           req.Color,
			Size:            req.Size,
			AdditionalPrice: req.AdditionalPrice,
		})
	}

	return variants, nil
}

func (s *Server) createProduct(ctx echo.Context) error {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("category id", err))
	}

	variants, err := variantsFromRequest(req.Variants)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), req.Name, req.Description, req.Price,
		categoryID, req.Stock, req.Brand, req.Images, variants,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(aggregate))
}

func (s *Server) listProducts(ctx echo.Context) error {
	page, _ := strconv.ParseInt(ctx.QueryParam("page"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.QueryParam("limit"), 10, 64)

	filter := queries.ListProductsFilter{
		Brand:      ctx.QueryParam("brand"),
		Search:     ctx.QueryParam("search"),
		SortBy:     ctx.QueryParam("sort"),
		Descending: ctx.QueryParam("sortDirection") != "asc",
	}

	if raw := ctx.QueryParam("category"); raw != "" {
		categoryID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("category id", err))
		}
		filter.CategoryID = &categoryID
	}
	if raw := ctx.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("min price", err))
		}
		filter.MinPrice = &minPrice
	}
	if raw := ctx.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("max price", err))
		}
		filter.MaxPrice = &maxPrice
	}

	query, err := queries.NewListProductsQuery(page, limit, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	listing, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listing)
}

func (s *Server) updateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}

	var req productRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("category id", err))
	}

	variants, err := variantsFromRequest(req.Variants)
	if err != nil {
		return writeError(ctx, err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, req.Description, req.Price,
		categoryID, req.Stock, req.Brand, req.Images, variants, active,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(aggregate))
}

func (s *Server) adjustProductStock(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}

	var req adjustStockRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewAdjustProductStockCommand(productID, req.Delta)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.AdjustProductStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(aggregate))
}
