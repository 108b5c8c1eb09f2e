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
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repository's tracker dependency in query
// tests, where event tracking is irrelevant.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_MapsFullReadModel() {
	testOrder := newStoredOrder()
	err := suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), result.ID)
	suite.Equal("ONLINE", result.Source)
	suite.Equal("Pending", result.Status)
	suite.Equal("Maya Castillo", result.CustomerName)
	suite.Equal("maya@example.com", result.CustomerEmail)
	suite.Equal("12 Pine St", result.ShippingAddress)
	suite.Equal(34.00, result.Total)
	suite.Equal("CARD", result.PaymentMethod)
	suite.Equal("PAID", result.PaymentStatus)
	suite.Empty(result.ReturnStatus)

	suite.Require().Len(result.Items, 1)
	suite.Equal("Ceramic Mug", result.Items[0].Name)
	suite.Equal(2, result.Items[0].Quantity)
	suite.Require().NotNil(result.Items[0].ProductID)

	suite.Require().Len(result.History, 1)
	suite.Equal("Pending", result.History[0].Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_HistoryIsNewestFirst() {
	testOrder := newStoredOrder()
	err := suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	err = testOrder.Pack(kernel.NewUUID(), kernel.NewUUID(), handover.DefaultLength)
	suite.Require().NoError(err)
	err = testOrder.VerifyHandover(testOrder.HandoverCode().String())
	suite.Require().NoError(err)
	err = suite.orderRepo.Update(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result.History, 3)
	suite.Equal("Shipped", result.History[0].Status)
	suite.Equal("Packed", result.History[1].Status)
	suite.Equal("Pending", result.History[2].Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

// newStoredOrder creates an online order ready to be persisted by the tests.
func newStoredOrder() *order.Order {
	customer, _ := order.NewCustomer("Maya Castillo", "maya@example.com", "+15550100", "12 Pine St")
	item, _ := order.NewItem(kernel.NewUUID(), "Ceramic Mug", 14.50, 2, product.Return7Days)
	testOrder, _ := order.NewOrder(
		order.Online, customer, []order.Item{item},
		34.00, 2.00, 3.00, 0,
		order.Card, handover.DefaultLength,
	)
	return testOrder
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
