package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles deleting one line from a cart.
// Fails with NotFound when the cart or the line is absent; the rollback of
// the enclosing transaction leaves the cart unchanged on any failure.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removals.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside one transaction.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	if err = userCart.RemoveItem(cmd.ProductID()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
