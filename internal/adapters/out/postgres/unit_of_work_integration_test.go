package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	postgresadapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/handover"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockOrderEventPublisher is a mock implementation of ports.OrderEventPublisher.
type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockOrderEventPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.HistoryDTO{},
		&productrepo.ProductDTO{}, &inventoryrepo.EntryDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history, products, inventory_log").Error
	suite.Require().NoError(err)

	suite.publisher = new(MockOrderEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.InventoryRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Rollback without an open transaction is a no-op so handlers can defer it.
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesTrackedOrders() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	suite.publisher.On("PublishOrderChanged", mock.Anything, testOrder).Return(nil).Once()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackPublishesNothing() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// A later commit on a fresh transaction must not replay discarded aggregates.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	suite.publisher.AssertNotCalled(suite.T(), "PublishOrderChanged", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	suite.publisher.On("PublishOrderChanged", mock.Anything, testOrder).
		Return(gorm.ErrInvalidDB).Once()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Commit must succeed even when publishing fails")

	retrievedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PackingWorkflowIsAtomic() {
	ctx := context.Background()

	// Seed the catalog and the order outside the transaction under test.
	testProduct := createTestProduct(10)
	testOrder := createTestOrderForProduct(testProduct)

	seedUow := suite.factory.Create()
	suite.publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).Return(nil)
	suite.Require().NoError(seedUow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, testOrder))

	// Pack the order: status change, stock reduction, and ledger entry must
	// land together.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testOrder.Pack(kernel.NewUUID(), kernel.NewUUID(), handover.DefaultLength))

	ledger := services.NewStockLedger(false)
	effect, changeType := order.TransitionStockEffect(order.Pending, order.Packed)
	entries, err := ledger.ApplyOrderEffect(effect, changeType, testOrder.Items(), []*product.Product{testProduct})
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, testProduct))
	suite.Require().NoError(uow.InventoryRepository().AddAll(ctx, entries))
	suite.Require().NoError(uow.Commit(ctx))

	// Verify all three writes are visible together.
	verifyUow := suite.factory.Create()

	retrievedOrder, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Packed, retrievedOrder.Status())

	retrievedProduct, err := verifyUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(8, retrievedProduct.Quantity())

	var ledgerRows int64
	suite.Require().NoError(suite.db.Model(&inventoryrepo.EntryDTO{}).Count(&ledgerRows).Error)
	suite.Equal(int64(1), ledgerRows)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createTestProduct(10)
	testOrder := createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// Both writes are visible inside the transaction.
	_, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	// Nothing is visible after rollback.
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().Error(err, "Product should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.publisher.On("PublishOrderChanged", mock.Anything, order1).Return(nil).Once()
	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")

	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createTestProduct(5)

	// Repository writes outside a transaction auto-commit.
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrievedProduct, err := suite.factory.Create().ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrievedProduct.ID())
}

// fulfillmentUoWFactoryFunc adapts the suite's factory to the narrowed
// factory interface the command handlers take.
type fulfillmentUoWFactoryFunc func() commands.FulfillmentUoW

func (f fulfillmentUoWFactoryFunc) Create() commands.FulfillmentUoW {
	return f()
}

func (suite *UnitOfWorkIntegrationTestSuite) packHandler() commands.AssignOrderToDeliveryCommandHandler {
	var f commands.FulfillmentUoWFactory = fulfillmentUoWFactoryFunc(func() commands.FulfillmentUoW {
		return suite.factory.Create()
	})
	return commands.NewAssignOrderToDeliveryCommandHandler(f, services.NewStockLedger(false), handover.DefaultLength)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentPacksOfSameOrderReduceStockOnce() {
	ctx := context.Background()

	testProduct := createTestProduct(10)
	testOrder := createTestOrderForProduct(testProduct)

	seedUow := suite.factory.Create()
	suite.publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).Return(nil)
	suite.Require().NoError(seedUow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, testOrder))

	cmd, err := commands.NewAssignOrderToDeliveryCommand(
		testOrder.ID(), kernel.NewUUID(), kernel.NewUUID(), staff.Shipment,
	)
	suite.Require().NoError(err)

	handler := suite.packHandler()

	// Both requests race on the same order row. The row lock makes the
	// second transaction re-read the committed Packed status, so its pack is
	// answered as a retry and the stock is reduced exactly once.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	suite.Require().NoError(results[0])
	suite.Require().NoError(results[1])

	verifyUow := suite.factory.Create()

	retrievedOrder, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Packed, retrievedOrder.Status())

	retrievedProduct, err := verifyUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(8, retrievedProduct.Quantity())

	var ledgerRows int64
	suite.Require().NoError(suite.db.Model(&inventoryrepo.EntryDTO{}).Count(&ledgerRows).Error)
	suite.Equal(int64(1), ledgerRows)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentPacksOfSameProductSerialize() {
	ctx := context.Background()

	testProduct := createTestProduct(10)
	orderA := createTestOrderForProduct(testProduct)
	orderB := createTestOrderForProduct(testProduct)

	seedUow := suite.factory.Create()
	suite.publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).Return(nil)
	suite.Require().NoError(seedUow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, orderA))
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, orderB))

	cmdA, err := commands.NewAssignOrderToDeliveryCommand(
		orderA.ID(), kernel.NewUUID(), kernel.NewUUID(), staff.Shipment,
	)
	suite.Require().NoError(err)
	cmdB, err := commands.NewAssignOrderToDeliveryCommand(
		orderB.ID(), kernel.NewUUID(), kernel.NewUUID(), staff.Shipment,
	)
	suite.Require().NoError(err)

	handler := suite.packHandler()

	// Different orders, one shelf. The product row lock forces the second
	// pack to read the quantity the first one committed.
	var wg sync.WaitGroup
	var errA, errB error
	wg.Add(2)
	go func() {
		defer wg.Done()
		errA = handler.Handle(ctx, cmdA)
	}()
	go func() {
		defer wg.Done()
		errB = handler.Handle(ctx, cmdB)
	}()
	wg.Wait()

	suite.Require().NoError(errA)
	suite.Require().NoError(errB)

	retrievedProduct, err := suite.factory.Create().ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, retrievedProduct.Quantity())

	// Two ledger rows whose running quantities chain without a gap.
	var entries []inventoryrepo.EntryDTO
	suite.Require().NoError(suite.db.Order("occurred_at ASC").Find(&entries).Error)
	suite.Require().Len(entries, 2)
	total := 0
	for _, entry := range entries {
		suite.Equal(entry.OldQuantity+entry.Change, entry.NewQuantity)
		total += entry.Change
	}
	suite.Equal(-4, total)
}

// createTestProduct creates a valid product for testing purposes.
func createTestProduct(quantity int) *product.Product {
	testProduct, _ := product.NewProduct(kernel.NewUUID(), "Ceramic Mug", 14.50, quantity, product.Return7Days)
	return testProduct
}

// createTestOrder creates a valid online order for testing purposes.
func createTestOrder() *order.Order {
	customer, _ := order.NewCustomer("Maya Castillo", "maya@example.com", "+15550100", "12 Pine St")
	item, _ := order.NewItem(kernel.NewUUID(), "Ceramic Mug", 14.50, 2, product.Return7Days)
	testOrder, _ := order.NewOrder(
		order.Online, customer, []order.Item{item},
		34.00, 2.00, 3.00, 0,
		order.Card, handover.DefaultLength,
	)
	return testOrder
}

// createTestOrderForProduct creates an order whose single line references the
// given product.
func createTestOrderForProduct(p *product.Product) *order.Order {
	customer, _ := order.NewCustomer("Maya Castillo", "maya@example.com", "+15550100", "12 Pine St")
	item, _ := order.NewItem(p.ID(), p.Name(), p.Price(), 2, p.ReturnPolicy())
	testOrder, _ := order.NewOrder(
		order.Online, customer, []order.Item{item},
		34.00, 2.00, 3.00, 0,
		order.Card, handover.DefaultLength,
	)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
