package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateCartItemCommandIsNotConstructed = errors.New(
		"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
	)
)

// UpdateCartItemCommand represents a request to set the quantity of an
// existing cart line. A non-positive quantity means removal, so any integer
// is accepted here; the aggregate decides what to do with it.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates the command, requiring valid user and
// product identifiers.
func NewUpdateCartItemCommand(userID, productID kernel.UUID, qty int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		qty:   qty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c UpdateCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the cart line's product.
func (c UpdateCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the requested quantity; values below 1 remove the line.
func (c UpdateCartItemCommand) Qty() int {
	return c.qty
}

func (c *UpdateCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *UpdateCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
