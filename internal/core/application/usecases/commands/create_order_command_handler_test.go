package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnpaidBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) SendPaymentReminder(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCalculator(t *testing.T) *services.PriceCalculator {
	t.Helper()
	shippingFee, err := kernel.NewMoney(9.99)
	require.NoError(t, err)
	freeShippingMin, err := kernel.NewMoney(100.00)
	require.NoError(t, err)
	calc, err := services.NewPriceCalculator(0.15, shippingFee, freeShippingMin)
	require.NoError(t, err)
	return calc
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Main St 1", "Springfield", "12345", "US")
	require.NoError(t, err)
	return addr
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestCreateOrderCommandHandler_Handle_PricesFromCatalog(t *testing.T) {
	ctx := t.Context()
	mouse, err := product.NewProduct(kernel.NewUUID(), "Wireless Mouse", "/images/mouse.jpg", mustMoney(t, 10.00), 5)
	require.NoError(t, err)
	keyboard, err := product.NewProduct(kernel.NewUUID(), "Keyboard", "/images/keyboard.jpg", mustMoney(t, 25.00), 3)
	require.NoError(t, err)

	// Client claims much lower prices; they must not influence the order.
	items := []commands.OrderItemInput{
		{ProductID: mouse.ID(), Name: mouse.Name(), Image: mouse.Image(), Price: 0.01, Qty: 2},
		{ProductID: keyboard.ID(), Name: keyboard.Name(), Image: keyboard.Image(), Price: 0.01, Qty: 1},
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), items, testAddress(t), "paypal")
	require.NoError(t, err)

	catalog := new(MockProductCatalog)
	catalog.On("FindMany", ctx, mock.AnythingOfType("[]kernel.UUID")).
		Return([]*product.Product{mouse, keyboard}, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, catalog, testCalculator(t), notifier, testLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	added := repo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.Created, added.Status())
	assert.True(t, added.ItemsPrice().IsEqual(mustMoney(t, 45.00)))
	assert.True(t, added.ShippingPrice().IsEqual(mustMoney(t, 9.99)))
	assert.True(t, added.TaxPrice().IsEqual(mustMoney(t, 6.75)))
	assert.True(t, added.TotalPrice().IsEqual(mustMoney(t, 61.74)))
	for _, li := range added.LineItems() {
		assert.False(t, li.Price().IsEqual(mustMoney(t, 0.01)))
	}
	catalog.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CatalogMismatchPersistsNothing(t *testing.T) {
	ctx := t.Context()
	mouse, err := product.NewProduct(kernel.NewUUID(), "Wireless Mouse", "/images/mouse.jpg", mustMoney(t, 10.00), 5)
	require.NoError(t, err)
	goneID := kernel.NewUUID()

	items := []commands.OrderItemInput{
		{ProductID: mouse.ID(), Name: mouse.Name(), Image: mouse.Image(), Qty: 1},
		{ProductID: goneID, Name: "Deleted Product", Image: "/images/gone.jpg", Qty: 1},
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), items, testAddress(t), "paypal")
	require.NoError(t, err)

	catalog := new(MockProductCatalog)
	catalog.On("FindMany", ctx, mock.AnythingOfType("[]kernel.UUID")).
		Return([]*product.Product{mouse}, nil).Once()

	// Neither the unit of work nor the notifier may be touched.
	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, catalog, testCalculator(t), notifier, testLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCatalogMismatch)
	assert.ErrorContains(t, err, "requested 2, found 1")
	factory.AssertExpectations(t)
	notifier.AssertNotCalled(t, "SendOrderConfirmation", ctx, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_DuplicateProductLinesRejected(t *testing.T) {
	ctx := t.Context()
	mouse, err := product.NewProduct(kernel.NewUUID(), "Wireless Mouse", "/images/mouse.jpg", mustMoney(t, 10.00), 5)
	require.NoError(t, err)

	// Same product split across two lines: the catalog resolves one product
	// for two payload lines, which must fail the checkout.
	items := []commands.OrderItemInput{
		{ProductID: mouse.ID(), Name: mouse.Name(), Image: mouse.Image(), Qty: 1},
		{ProductID: mouse.ID(), Name: mouse.Name(), Image: mouse.Image(), Qty: 2},
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), items, testAddress(t), "paypal")
	require.NoError(t, err)

	catalog := new(MockProductCatalog)
	catalog.On("FindMany", ctx, mock.AnythingOfType("[]kernel.UUID")).
		Return([]*product.Product{mouse}, nil).Once()

	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, catalog, testCalculator(t), notifier, testLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCatalogMismatch)
	assert.ErrorContains(t, err, "requested 2, found 1")
	factory.AssertNotCalled(t, "Create")
	notifier.AssertNotCalled(t, "SendOrderConfirmation", ctx, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	mouse, err := product.NewProduct(kernel.NewUUID(), "Wireless Mouse", "/images/mouse.jpg", mustMoney(t, 10.00), 5)
	require.NoError(t, err)

	items := []commands.OrderItemInput{
		{ProductID: mouse.ID(), Name: mouse.Name(), Image: mouse.Image(), Qty: 1},
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), items, testAddress(t), "paypal")
	require.NoError(t, err)

	catalog := new(MockProductCatalog)
	catalog.On("FindMany", ctx, mock.AnythingOfType("[]kernel.UUID")).
		Return([]*product.Product{mouse}, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("smtp connection refused")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, catalog, testCalculator(t), notifier, testLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockProductCatalog), testCalculator(t), new(MockNotifier), testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
