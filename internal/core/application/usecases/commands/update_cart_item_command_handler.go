package commands

import (
	"context"
)

// UpdateCartItemCommandHandler handles quantity changes on existing cart
// lines. Both the cart and the line must already exist; a non-positive
// quantity removes the line. The price snapshot is never touched.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart line updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside one transaction.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = userCart.UpdateItem(cmd.ProductID(), cmd.Qty()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
