// Package category holds the catalog category feature.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/domain"
)

// CreateCategory adds a category, optionally nested under a parent.
type CreateCategory struct {
	Title    string     `json:"title" validate:"required,max=100"`
	ParentID *uuid.UUID `json:"parentId"`
}

// GetAllCategories lists every category. No inputs, always valid.
type GetAllCategories struct{}

// GetCategoryByID fetches one category.
type GetCategoryByID struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// CategoryResult is a category projection.
type CategoryResult struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
}

// CreateCategoryHandler stages and commits a new category.
type CreateCategoryHandler struct {
	begin app.UnitOfWorkFactory
}

func NewCreateCategoryHandler(begin app.UnitOfWorkFactory) *CreateCategoryHandler {
	return &CreateCategoryHandler{begin: begin}
}

func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategory) (app.Result[bool], error) {
	uow := h.begin()

	if cmd.ParentID != nil {
		parent, err := uow.Categories().GetByID(ctx, *cmd.ParentID)
		if err != nil {
			return app.Result[bool]{}, err
		}
		if parent == nil {
			return app.Fail[bool]("ParentID", "Parent category not found"), nil
		}
	}

	category, err := domain.NewCategory(cmd.Title, cmd.ParentID)
	if err != nil {
		return app.FailDomain[bool](err), nil
	}

	if err := uow.Categories().Create(ctx, category); err != nil {
		return app.Result[bool]{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}
	return app.Ok(true), nil
}

// GetAllCategoriesHandler lists all categories; an empty catalog yields an
// empty list, not a failure.
type GetAllCategoriesHandler struct {
	begin app.UnitOfWorkFactory
}

func NewGetAllCategoriesHandler(begin app.UnitOfWorkFactory) *GetAllCategoriesHandler {
	return &GetAllCategoriesHandler{begin: begin}
}

func (h *GetAllCategoriesHandler) Handle(ctx context.Context, q GetAllCategories) (app.Result[[]CategoryResult], error) {
	uow := h.begin()
	categories, err := uow.Categories().GetAll(ctx)
	if err != nil {
		return app.Result[[]CategoryResult]{}, err
	}

	results := make([]CategoryResult, 0, len(categories))
	for _, c := range categories {
		results = append(results, CategoryResult{
			ID:       c.ID(),
			Title:    c.Title(),
			ParentID: c.ParentID(),
		})
	}
	return app.Ok(results), nil
}

// GetCategoryByIDHandler fetches one category or reports it missing.
type GetCategoryByIDHandler struct {
	begin app.UnitOfWorkFactory
}

func NewGetCategoryByIDHandler(begin app.UnitOfWorkFactory) *GetCategoryByIDHandler {
	return &GetCategoryByIDHandler{begin: begin}
}

func (h *GetCategoryByIDHandler) Handle(ctx context.Context, q GetCategoryByID) (app.Result[CategoryResult], error) {
	uow := h.begin()
	category, err := uow.Categories().GetByID(ctx, q.ID)
	if err != nil {
		return app.Result[CategoryResult]{}, err
	}
	if category == nil {
		return app.NotFound[CategoryResult]("ID", "Category not found"), nil
	}
	return app.Ok(CategoryResult{
		ID:       category.ID(),
		Title:    category.Title(),
		ParentID: category.ParentID(),
	}), nil
}
