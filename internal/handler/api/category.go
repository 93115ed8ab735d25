package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/app/category"
)

// CategoryHandler serves catalog categories.
type CategoryHandler struct {
	mediator *app.Mediator
}

func NewCategoryHandler(mediator *app.Mediator) *CategoryHandler {
	return &CategoryHandler{mediator: mediator}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	var cmd category.CreateCategory
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return send[category.CreateCategory, bool](c, h.mediator, cmd)
}

// List handles GET /categories.
func (h *CategoryHandler) List(c echo.Context) error {
	return send[category.GetAllCategories, []category.CategoryResult](c, h.mediator, category.GetAllCategories{})
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return send[category.GetCategoryByID, category.CategoryResult](c, h.mediator, category.GetCategoryByID{ID: id})
}
