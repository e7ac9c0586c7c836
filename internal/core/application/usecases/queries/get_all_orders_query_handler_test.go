package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) saveOrder(userID kernel.UUID) *order.Order {
	price := func(amount float64) kernel.Money {
		m, err := kernel.NewMoney(amount)
		suite.Require().NoError(err)
		return m
	}

	item, err := order.NewLineItem(
		kernel.NewUUID(), "mouse", "/images/mouse.jpg", price(10.00), 1)
	suite.Require().NoError(err)

	address, err := order.NewAddress("Main St 1", "Springfield", "12345", "US")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), userID,
		[]*order.LineItem{item},
		address, "PayPal",
		price(10.00), price(1.50), price(9.99), price(21.49),
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersAcrossUsers() {
	first := suite.saveOrder(kernel.NewUUID())
	second := suite.saveOrder(kernel.NewUUID())

	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[first.ID()])
	suite.True(resultIDs[second.ID()])
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ReflectsLifecycleState() {
	o := suite.saveOrder(kernel.NewUUID())

	result, err := order.NewPaymentResult(
		"PAYID-1", "COMPLETED", "2026-08-30T10:00:00Z", "buyer@example.com")
	suite.Require().NoError(err)
	err = o.MarkPaid(result, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.orderRepo.Update(context.Background(), o)
	suite.Require().NoError(err)

	query := queries.NewGetAllOrdersQuery()

	views, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(order.Paid, views[0].Status)
	suite.NotNil(views[0].PaidAt)
	suite.Nil(views[0].DeliveredAt)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
