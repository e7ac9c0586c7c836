package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

type GetCartQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCartQueryHandler
	cartRepo  *cartrepo.GormCartRepository
}

func (suite *GetCartQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&productrepo.ProductDTO{}, &cartrepo.CartDTO{}, &cartrepo.CartItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCartQueryHandler(db)
	suite.cartRepo = cartrepo.NewGormCartRepository(db, &mockAggregateTracker{})
}

func (suite *GetCartQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCartQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE carts CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCartQueryHandlerTestSuite) saveProduct(name string, price float64, stock int) *product.Product {
	money, err := kernel.NewMoney(price)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), name, "/images/"+name+".jpg", money, stock)
	suite.Require().NoError(err)

	dto := productrepo.ProductDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		Image:        p.Image(),
		PriceCents:   p.Price().Cents(),
		CountInStock: p.CountInStock(),
	}
	err = suite.db.Create(&dto).Error
	suite.Require().NoError(err)

	return p
}

func (suite *GetCartQueryHandlerTestSuite) saveCartWith(userID kernel.UUID, products []*product.Product, qtys []int) {
	c, err := cart.NewCart(userID)
	suite.Require().NoError(err)

	for i, p := range products {
		err = c.AddItem(p, qtys[i])
		suite.Require().NoError(err)
	}

	err = suite.cartRepo.Save(context.Background(), c)
	suite.Require().NoError(err)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_UnknownUser_ReturnsEmptyCart() {
	userID := kernel.NewUUID()
	query, err := queries.NewGetCartQuery(userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.UserID.IsEqual(userID))
	suite.NotNil(result.Items)
	suite.Empty(result.Items)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_SnapshotAndCurrentPricesDiffer() {
	userID := kernel.NewUUID()
	p := suite.saveProduct("mouse", 10.00, 7)
	suite.saveCartWith(userID, []*product.Product{p}, []int{2})

	// Raise the catalog price after the item was added
	err := suite.db.Model(&productrepo.ProductDTO{}).
		Where("id = ?", p.ID().Bytes()).
		Update("price_cents", int64(1250)).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetCartQuery(userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	item := result.Items[0]
	suite.Equal(int64(1000), item.PriceAtAdd.Cents())
	suite.Equal(int64(1250), item.CurrentPrice.Cents())
	suite.Equal(2, item.Qty)
	suite.Equal(7, item.CountInStock)
	suite.Equal("mouse", item.Name)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_RemovedProductFallsBackToSnapshot() {
	userID := kernel.NewUUID()
	p := suite.saveProduct("keyboard", 25.00, 3)
	suite.saveCartWith(userID, []*product.Product{p}, []int{1})

	// Product disappears from the catalog
	err := suite.db.Where("id = ?", p.ID().Bytes()).Delete(&productrepo.ProductDTO{}).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetCartQuery(userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	item := result.Items[0]
	suite.Equal(int64(2500), item.PriceAtAdd.Cents())
	suite.Equal(int64(2500), item.CurrentPrice.Cents())
	suite.Equal(0, item.CountInStock)
	suite.Equal("keyboard", item.Name)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_ItemsKeepInsertionOrder() {
	userID := kernel.NewUUID()
	first := suite.saveProduct("first", 5.00, 10)
	second := suite.saveProduct("second", 6.00, 10)
	third := suite.saveProduct("third", 7.00, 10)
	suite.saveCartWith(userID, []*product.Product{first, second, third}, []int{1, 2, 3})

	query, err := queries.NewGetCartQuery(userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 3)
	suite.Equal("first", result.Items[0].Name)
	suite.Equal("second", result.Items[1].Name)
	suite.Equal("third", result.Items[2].Name)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCartQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetCartQuery constructor")
}

func TestGetCartQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCartQueryHandlerTestSuite))
}
