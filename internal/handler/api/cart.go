package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/app/cart"
	"github.com/shoplite/shoplite/internal/middleware"
)

// CartHandler serves the authenticated user's cart. The user ID always comes
// from the bearer token, never from the request body.
type CartHandler struct {
	mediator *app.Mediator
}

func NewCartHandler(mediator *app.Mediator) *CartHandler {
	return &CartHandler{mediator: mediator}
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c echo.Context) error {
	var body struct {
		ProductID uuid.UUID `json:"productId"`
		Quantity  int       `json:"quantity"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd := cart.AddProductToCart{
		UserID:    middleware.UserID(c),
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	}
	return send[cart.AddProductToCart, bool](c, h.mediator, cmd)
}

// UpdateItem handles PUT /cart/items/:productId.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	var body struct {
		NewQuantity int `json:"newQuantity"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd := cart.UpdateCartItemQuantity{
		UserID:      middleware.UserID(c),
		ProductID:   productID,
		NewQuantity: body.NewQuantity,
	}
	return send[cart.UpdateCartItemQuantity, bool](c, h.mediator, cmd)
}

// RemoveItem handles DELETE /cart/items/:productId.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	cmd := cart.RemoveItemFromCart{
		UserID:    middleware.UserID(c),
		ProductID: productID,
	}
	return send[cart.RemoveItemFromCart, bool](c, h.mediator, cmd)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c echo.Context) error {
	cmd := cart.ClearCart{UserID: middleware.UserID(c)}
	return send[cart.ClearCart, bool](c, h.mediator, cmd)
}

// Details handles GET /cart.
func (h *CartHandler) Details(c echo.Context) error {
	q := cart.GetCartDetails{UserID: middleware.UserID(c)}
	return send[cart.GetCartDetails, *cart.Details](c, h.mediator, q)
}

// ItemCount handles GET /cart/count.
func (h *CartHandler) ItemCount(c echo.Context) error {
	q := cart.GetCartItemCount{UserID: middleware.UserID(c)}
	return send[cart.GetCartItemCount, int](c, h.mediator, q)
}
