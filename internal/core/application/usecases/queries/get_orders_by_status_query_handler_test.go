package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/handover"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersByStatusQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersByStatusQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.HistoryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersByStatusQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyMatching() {
	ctx := context.Background()

	pending1 := newStoredOrder()
	pending2 := newStoredOrder()
	packed := newStoredOrder()
	suite.Require().NoError(packed.Pack(kernel.NewUUID(), kernel.NewUUID(), handover.DefaultLength))

	suite.Require().NoError(suite.orderRepo.Add(ctx, pending1))
	suite.Require().NoError(suite.orderRepo.Add(ctx, pending2))
	suite.Require().NoError(suite.orderRepo.Add(ctx, packed))

	query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		suite.Equal("Pending", r.Status)
		suite.Equal("ONLINE", r.Source)
		suite.Equal("Maya Castillo", r.CustomerName)
		suite.Equal(1, r.ItemCount)
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[pending1.ID()])
	suite.True(resultIDs[pending2.ID()])
	suite.False(resultIDs[packed.ID()])
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_CountsAllOrderLines() {
	ctx := context.Background()

	testOrder := newStoredOrderWithItems(3)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(3, result[0].ItemCount)
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_InvalidStatus_ConstructorRejects() {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	suite.Require().Error(err)
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersByStatusQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersByStatusQuery constructor")
}

// newStoredOrderWithItems creates a pending order with the given number of
// one-unit lines.
func newStoredOrderWithItems(lines int) *order.Order {
	customer, _ := order.NewCustomer("Maya Castillo", "maya@example.com", "+15550100", "12 Pine St")

	items := make([]order.Item, 0, lines)
	for i := 0; i < lines; i++ {
		item, _ := order.NewItem(kernel.NewUUID(), "Ceramic Mug", 14.50, 1, product.Return7Days)
		items = append(items, item)
	}

	testOrder, _ := order.NewOrder(
		order.Online, customer, items,
		34.00, 2.00, 3.00, 0,
		order.Card, handover.DefaultLength,
	)
	return testOrder
}

func TestGetOrdersByStatusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersByStatusQueryHandlerTestSuite))
}
