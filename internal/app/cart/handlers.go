package cart

import (
	"context"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/domain"
)

// AddProductToCartHandler verifies the user, the product and its stock, then
// loads or creates the cart and merges the item in. Every precondition is
// checked before any mutation; the commit is the single durability point.
type AddProductToCartHandler struct {
	begin app.UnitOfWorkFactory
	users app.UserDirectory
}

func NewAddProductToCartHandler(begin app.UnitOfWorkFactory, users app.UserDirectory) *AddProductToCartHandler {
	return &AddProductToCartHandler{begin: begin, users: users}
}

func (h *AddProductToCartHandler) Handle(ctx context.Context, cmd AddProductToCart) (app.Result[bool], error) {
	exists, err := h.users.Exists(ctx, cmd.UserID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if !exists {
		return app.Fail[bool]("UserID", "User not found"), nil
	}

	uow := h.begin()

	product, err := uow.Products().GetByID(ctx, cmd.ProductID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if product == nil {
		return app.Fail[bool]("ProductID", "Product not found"), nil
	}
	if product.Quantity() < cmd.Quantity {
		return app.Fail[bool]("Quantity", "The requested quantity is not available in stock."), nil
	}

	cart, err := uow.Carts().GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if cart == nil {
		cart, err = domain.NewCart(cmd.UserID)
		if err != nil {
			return app.FailDomain[bool](err), nil
		}
		if err := uow.Carts().Create(ctx, cart); err != nil {
			return app.Result[bool]{}, err
		}
	}

	// The gate and the checks above make a guard failure unreachable here,
	// but a domain error still becomes a failure result, not a fault.
	if err := cart.AddItem(cmd.ProductID, cmd.Quantity, product.Price()); err != nil {
		return app.FailDomain[bool](err), nil
	}

	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}
	return app.Ok(true), nil
}

// RemoveItemFromCartHandler removes a product's line item from the user's
// cart.
type RemoveItemFromCartHandler struct {
	begin app.UnitOfWorkFactory
}

func NewRemoveItemFromCartHandler(begin app.UnitOfWorkFactory) *RemoveItemFromCartHandler {
	return &RemoveItemFromCartHandler{begin: begin}
}

func (h *RemoveItemFromCartHandler) Handle(ctx context.Context, cmd RemoveItemFromCart) (app.Result[bool], error) {
	uow := h.begin()

	cart, err := uow.Carts().GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if cart == nil {
		return app.Fail[bool]("UserID", "Cart not found for this user."), nil
	}

	item, ok := cart.ItemByProduct(cmd.ProductID)
	if !ok {
		return app.Fail[bool]("ProductID", "Product does not exist in the cart."), nil
	}

	if err := cart.RemoveItem(item.ID()); err != nil {
		return app.FailDomain[bool](err), nil
	}

	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}
	return app.Ok(true), nil
}

// UpdateCartItemQuantityHandler overwrites a line item's quantity after
// re-checking the catalog for existence and stock.
type UpdateCartItemQuantityHandler struct {
	begin app.UnitOfWorkFactory
}

func NewUpdateCartItemQuantityHandler(begin app.UnitOfWorkFactory) *UpdateCartItemQuantityHandler {
	return &UpdateCartItemQuantityHandler{begin: begin}
}

func (h *UpdateCartItemQuantityHandler) Handle(ctx context.Context, cmd UpdateCartItemQuantity) (app.Result[bool], error) {
	uow := h.begin()

	cart, err := uow.Carts().GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if cart == nil {
		return app.Fail[bool]("UserID", "Cart not found for this user."), nil
	}

	item, ok := cart.ItemByProduct(cmd.ProductID)
	if !ok {
		return app.Fail[bool]("ProductID", "Product does not exist in the cart."), nil
	}

	product, err := uow.Products().GetByID(ctx, cmd.ProductID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if product == nil {
		return app.Fail[bool]("ProductID", "Product not found in catalog."), nil
	}
	if product.Quantity() < cmd.NewQuantity {
		return app.Fail[bool]("NewQuantity", "The requested quantity is not available in stock."), nil
	}

	if err := cart.UpdateItemQuantity(item.ID(), cmd.NewQuantity); err != nil {
		return app.FailDomain[bool](err), nil
	}

	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}
	return app.Ok(true), nil
}

// ClearCartHandler empties the user's cart. A user without a cart already
// has an empty one, so that case succeeds without touching storage.
type ClearCartHandler struct {
	begin app.UnitOfWorkFactory
}

func NewClearCartHandler(begin app.UnitOfWorkFactory) *ClearCartHandler {
	return &ClearCartHandler{begin: begin}
}

func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCart) (app.Result[bool], error) {
	uow := h.begin()

	cart, err := uow.Carts().GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if cart == nil {
		return app.Ok(true), nil
	}

	cart.Clear()

	if err := uow.Commit(ctx); err != nil {
		return app.Result[bool]{}, err
	}
	return app.Ok(true), nil
}

// GetCartDetailsHandler serves the cart projection straight from the read
// model.
type GetCartDetailsHandler struct {
	carts ReadModel
}

func NewGetCartDetailsHandler(carts ReadModel) *GetCartDetailsHandler {
	return &GetCartDetailsHandler{carts: carts}
}

func (h *GetCartDetailsHandler) Handle(ctx context.Context, q GetCartDetails) (app.Result[*Details], error) {
	details, err := h.carts.Details(ctx, q.UserID)
	if err != nil {
		return app.Result[*Details]{}, err
	}
	return app.Ok(details), nil
}

// GetCartItemCountHandler sums the quantities in the user's cart.
type GetCartItemCountHandler struct {
	carts ReadModel
}

func NewGetCartItemCountHandler(carts ReadModel) *GetCartItemCountHandler {
	return &GetCartItemCountHandler{carts: carts}
}

func (h *GetCartItemCountHandler) Handle(ctx context.Context, q GetCartItemCount) (app.Result[int], error) {
	count, err := h.carts.ItemCount(ctx, q.UserID)
	if err != nil {
		return app.Result[int]{}, err
	}
	return app.Ok(count), nil
}
