package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreatedOrder(t *testing.T) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), "Wireless Mouse", "/images/mouse.jpg", mustMoney(t, 10.00), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []*order.LineItem{li}, testAddress(t), "paypal",
		mustMoney(t, 10.00), mustMoney(t, 1.50), mustMoney(t, 9.99), mustMoney(t, 21.49),
	)
	require.NoError(t, err)
	return o
}

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newCreatedOrder(t)
	details := commands.PaymentDetails{
		ID:         "PAYID-123",
		Status:     "COMPLETED",
		UpdateTime: "2026-08-30T10:00:00Z",
		PayerEmail: "payer@example.com",
	}
	cmd, err := commands.NewMarkOrderPaidCommand(aggregate.ID(), details, "account@example.com")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.IsPaid())
	require.NotNil(t, aggregate.PaymentResult())
	assert.Equal(t, "PAYID-123", aggregate.PaymentResult().ID())
	assert.Equal(t, "payer@example.com", aggregate.PaymentResult().PayerEmail())
	require.NotNil(t, aggregate.PaidAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_DefaultsForPartialDetails(t *testing.T) {
	ctx := t.Context()
	aggregate := newCreatedOrder(t)
	cmd, err := commands.NewMarkOrderPaidCommand(aggregate.ID(), commands.PaymentDetails{}, "account@example.com")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	result := aggregate.PaymentResult()
	require.NotNil(t, result)
	assert.Equal(t, "manual", result.ID())
	assert.Equal(t, "completed", result.Status())
	assert.Equal(t, "account@example.com", result.PayerEmail())
	_, err = time.Parse(time.RFC3339, result.UpdateTime())
	assert.NoError(t, err)
}

func TestMarkOrderPaidCommandHandler_Handle_NoPayerEmailAnywhere(t *testing.T) {
	ctx := t.Context()
	aggregate := newCreatedOrder(t)

	// Provider reported nothing and the request carried no account email.
	cmd, err := commands.NewMarkOrderPaidCommand(aggregate.ID(), commands.PaymentDetails{}, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	result := aggregate.PaymentResult()
	require.NotNil(t, result)
	assert.Equal(t, "manual", result.ID())
	assert.Equal(t, "completed", result.Status())
	assert.Equal(t, "unknown", result.PayerEmail())
	repo.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_RepeatPaymentOverwritesResult(t *testing.T) {
	ctx := t.Context()
	aggregate := newCreatedOrder(t)
	first, err := order.NewPaymentResult("PAYID-1", "pending", "2026-08-30T09:00:00Z", "payer@example.com")
	require.NoError(t, err)
	require.NoError(t, aggregate.MarkPaid(first, time.Now().UTC()))

	details := commands.PaymentDetails{
		ID:         "PAYID-2",
		Status:     "COMPLETED",
		UpdateTime: "2026-08-30T10:00:00Z",
		PayerEmail: "payer@example.com",
	}
	cmd, err := commands.NewMarkOrderPaidCommand(aggregate.ID(), details, "account@example.com")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "PAYID-2", aggregate.PaymentResult().ID())
	assert.Equal(t, order.Paid, aggregate.Status())
}

func TestMarkOrderPaidCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewMarkOrderPaidCommand(orderID, commands.PaymentDetails{}, "account@example.com")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
