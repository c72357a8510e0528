package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/category"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
	IsActive    *bool  `json:"isActive"`
}

func categoryToResponse(aggregate *category.Category) queries.CategoryResponse {
	var parentID *string
	if parent := aggregate.ParentID(); parent != nil {
		raw := parent.String()
		parentID = &raw
	}

	return queries.CategoryResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Slug:        aggregate.Slug(),
		ParentID:    parentID,
		IsActive:    aggregate.IsActive(),
	}
}

func parentIDFromRequest(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("parent category id", err)
	}

	return &parsed, nil
}

func (s *Server) createCategory(ctx echo.Context) error {
	var req categoryRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	parentID, err := parentIDFromRequest(req.ParentID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), req.Name, req.Description, parentID)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, categoryToResponse(aggregate))
}

func (s *Server) listCategories(ctx echo.Context) error {
	categories, err := s.handlers.ListCategories.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}

func (s *Server) getCategory(ctx echo.Context) error {
	categoryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("category id", err))
	}

	query, err := queries.NewGetCategoryQuery(categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetCategory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) updateCategory(ctx echo.Context) error {
	categoryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("category id", err))
	}

	var req categoryRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	parentID, err := parentIDFromRequest(req.ParentID)
	if err != nil {
		return writeError(ctx, err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	cmd, err := commands.NewUpdateCategoryCommand(categoryID, req.Name, req.Description, parentID, active)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.UpdateCategory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categoryToResponse(aggregate))
}

func (s *Server) deleteCategory(ctx echo.Context) error {
	categoryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("category id", err))
	}

	cmd, err := commands.NewDeleteCategoryCommand(categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
