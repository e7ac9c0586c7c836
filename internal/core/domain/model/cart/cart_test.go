package cart_test

import (
	"testing"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, price float64) *product.Product {
	t.Helper()
	m, err := kernel.NewMoney(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Ceramic mug", "/img/mug.jpg", m, 12)
	require.NoError(t, err)
	return p
}

func TestNewCart(t *testing.T) {
	t.Run("should create empty cart for valid user", func(t *testing.T) {
		userID := kernel.NewUUID()

		c, err := cart.NewCart(userID)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.UserID().IsEqual(userID))
		assert.True(t, c.IsEmpty())
	})

	t.Run("should fail with invalid user", func(t *testing.T) {
		var userID kernel.UUID

		c, err := cart.NewCart(userID)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRestoreCart(t *testing.T) {
	userID := kernel.NewUUID()
	price, _ := kernel.NewMoney(10)

	t.Run("should restore cart with items in order", func(t *testing.T) {
		first, _ := cart.NewItem(kernel.NewUUID(), "Ceramic mug", "", price, 2)
		second, _ := cart.NewItem(kernel.NewUUID(), "Walnut desk", "", price, 1)

		c, err := cart.RestoreCart(userID, []*cart.Item{first, second})

		require.NoError(t, err)
		require.Len(t, c.Items(), 2)
		assert.True(t, c.Items()[0].ProductID().IsEqual(first.ProductID()))
		assert.True(t, c.Items()[1].ProductID().IsEqual(second.ProductID()))
	})

	t.Run("should reject duplicate product lines", func(t *testing.T) {
		productID := kernel.NewUUID()
		first, _ := cart.NewItem(productID, "Ceramic mug", "", price, 2)
		second, _ := cart.NewItem(productID, "Ceramic mug", "", price, 3)

		c, err := cart.RestoreCart(userID, []*cart.Item{first, second})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, c)
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		c, err := cart.RestoreCart(userID, []*cart.Item{{}})

		require.ErrorIs(t, err, cart.ErrItemIsNotConstructed)
		assert.Nil(t, c)
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("should append new line with snapshot price", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())
		p := testProduct(t, 14.50)

		require.NoError(t, c.AddItem(p, 2))

		require.Len(t, c.Items(), 1)
		item := c.Items()[0]
		assert.True(t, item.ProductID().IsEqual(p.ID()))
		assert.Equal(t, "Ceramic mug", item.Name())
		assert.Equal(t, 2, item.Qty())
		assert.True(t, item.PriceAtAdd().IsEqual(p.Price()))
	})

	t.Run("adding same product twice keeps one line with latest qty and original snapshot", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())
		p := testProduct(t, 14.50)
		require.NoError(t, c.AddItem(p, 2))

		repriced, err := product.NewProduct(p.ID(), p.Name(), p.Image(), p.Price().MulQty(2), 12)
		require.NoError(t, err)
		require.NoError(t, c.AddItem(repriced, 5))

		require.Len(t, c.Items(), 1)
		assert.Equal(t, 5, c.Items()[0].Qty())
		assert.True(t, c.Items()[0].PriceAtAdd().IsEqual(p.Price()), "snapshot must not be refreshed")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())

		err := c.AddItem(testProduct(t, 5), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should fail with unconstructed product", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())

		err := c.AddItem(&product.Product{}, 1)

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

func TestCart_UpdateItem(t *testing.T) {
	t.Run("should set quantity for existing line", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())
		p := testProduct(t, 8)
		require.NoError(t, c.AddItem(p, 1))

		require.NoError(t, c.UpdateItem(p.ID(), 4))

		assert.Equal(t, 4, c.Items()[0].Qty())
	})

	t.Run("non-positive quantity removes the line", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())
		p := testProduct(t, 8)
		require.NoError(t, c.AddItem(p, 3))

		require.NoError(t, c.UpdateItem(p.ID(), 0))

		assert.True(t, c.IsEmpty())
	})

	t.Run("should fail NotFound for missing line", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())

		err := c.UpdateItem(kernel.NewUUID(), 2)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("should remove existing line and keep order of the rest", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())
		first := testProduct(t, 5)
		second := testProduct(t, 6)
		third := testProduct(t, 7)
		require.NoError(t, c.AddItem(first, 1))
		require.NoError(t, c.AddItem(second, 1))
		require.NoError(t, c.AddItem(third, 1))

		require.NoError(t, c.RemoveItem(second.ID()))

		require.Len(t, c.Items(), 2)
		assert.True(t, c.Items()[0].ProductID().IsEqual(first.ID()))
		assert.True(t, c.Items()[1].ProductID().IsEqual(third.ID()))
	})

	t.Run("should fail NotFound and leave cart unchanged", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())
		p := testProduct(t, 5)
		require.NoError(t, c.AddItem(p, 2))

		err := c.RemoveItem(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 2, c.Items()[0].Qty())
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("should empty items but keep the cart", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID())
		require.NoError(t, c.AddItem(testProduct(t, 5), 2))

		c.Clear()

		assert.True(t, c.IsEmpty())
		require.NoError(t, c.Validate())
	})
}

func TestCart_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var c cart.Cart

		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}
