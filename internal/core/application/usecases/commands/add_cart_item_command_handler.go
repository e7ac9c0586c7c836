package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding a catalog product to a cart.
//
// The product is looked up in the catalog first (NotFound when absent), the
// cart is created lazily on the user's first add, and an existing line for
// the same product keeps its original price snapshot while taking the new
// quantity.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.ProductCatalog
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, catalog ports.ProductCatalog) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the command: catalog lookup, lazy cart creation, merge or
// append, transactional save.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.catalog.FindByID(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, cmd.UserID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if userCart, err = cart.NewCart(cmd.UserID()); err != nil {
			return err
		}
	}

	if err = userCart.AddItem(p, cmd.Qty()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
