package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	p := newCatalogProduct(t, 5.00)

	userCart, err := cart.NewCart(userID)
	require.NoError(t, err)
	require.NoError(t, userCart.AddItem(p, 1))

	cmd, err := commands.NewClearCartCommand(userID)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, userID).Return(userCart, nil).Once(),
		repo.On("Save", ctx, userCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClearCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, userCart.IsEmpty())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearCartCommandHandler_Handle_NoCartIsNoOp(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewClearCartCommand(userID)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClearCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
