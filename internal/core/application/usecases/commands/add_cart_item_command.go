package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
)

// AddCartItemCommand represents a request to put a catalog product into a
// user's cart with a desired quantity.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates the command, requiring valid user and
// product identifiers and a positive quantity.
func NewAddCartItemCommand(userID, productID kernel.UUID, qty int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQty(qty),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c AddCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the catalog product to add.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the desired quantity.
func (c AddCartItemCommand) Qty() int {
	return c.qty
}

func (c *AddCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQty(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}
