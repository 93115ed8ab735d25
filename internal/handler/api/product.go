package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/app/product"
	"github.com/shoplite/shoplite/internal/domain"
	"github.com/shoplite/shoplite/internal/middleware"
)

// ProductHandler serves catalog products. Listing and detail are public;
// mutations require auth and take the seller from the bearer token.
type ProductHandler struct {
	mediator *app.Mediator
}

func NewProductHandler(mediator *app.Mediator) *ProductHandler {
	return &ProductHandler{mediator: mediator}
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context) error {
	var body struct {
		CategoryID  *uuid.UUID            `json:"categoryId"`
		Title       string                `json:"title"`
		Description string                `json:"description"`
		Price       decimal.Decimal       `json:"price"`
		Quantity    int                   `json:"quantity"`
		State       domain.ProductState   `json:"state"`
		Images      []product.ImageUpload `json:"images"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd := product.CreateProduct{
		UserID:      middleware.UserID(c),
		CategoryID:  body.CategoryID,
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		Quantity:    body.Quantity,
		State:       body.State,
		Images:      body.Images,
	}
	return send[product.CreateProduct, bool](c, h.mediator, cmd)
}

// Edit handles PUT /products/:id.
func (h *ProductHandler) Edit(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var cmd product.EditProduct
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	cmd.ProductID = id
	return send[product.EditProduct, bool](c, h.mediator, cmd)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return send[product.DeleteProduct, bool](c, h.mediator, product.DeleteProduct{ID: id})
}

// List handles GET /products.
func (h *ProductHandler) List(c echo.Context) error {
	q := product.GetProducts{
		Title:       c.QueryParam("title"),
		CurrentPage: queryInt(c, "currentPage", 1),
		PageCount:   queryInt(c, "pageCount", 20),
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid categoryId")
		}
		q.CategoryID = &id
	}
	return send[product.GetProducts, []product.Summary](c, h.mediator, q)
}

// Detail handles GET /products/:id.
func (h *ProductHandler) Detail(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return send[product.GetProductDetailByID, *product.Detail](c, h.mediator, product.GetProductDetailByID{ID: id})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
