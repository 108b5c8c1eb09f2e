package cmd

import (
	"log/slog"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	ledger     services.StockLedger
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		ledger:     services.NewStockLedger(configs.AllowNegativeStock),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.ledger, c.configs.HandoverCodeLength)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateUpdateProductStockCommandHandler() commands.UpdateProductStockCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductStockCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateAssignOrderToDeliveryCommandHandler() commands.AssignOrderToDeliveryCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderToDeliveryCommandHandler(f, c.ledger, c.configs.HandoverCodeLength)
}

func (c *CompositionRoot) CreateVerifyHandoverCommandHandler() commands.VerifyHandoverCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyHandoverCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyDeliveryHandoverCommandHandler() commands.VerifyDeliveryHandoverCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyDeliveryHandoverCommandHandler(f, c.configs.RequireDeliveryPhoto)
}

func (c *CompositionRoot) CreateMarkDeliveryFailedCommandHandler() commands.MarkDeliveryFailedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveryFailedCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateReturnStatusCommandHandler() commands.UpdateReturnStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReturnStatusCommandHandler(f, c.configs.HandoverCodeLength)
}

func (c *CompositionRoot) CreateVerifyReturnCollectionCommandHandler() commands.VerifyReturnCollectionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyReturnCollectionCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyReturnToWarehouseCommandHandler() commands.VerifyReturnToWarehouseCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyReturnToWarehouseCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateUpdateRefundStatusCommandHandler() commands.UpdateRefundStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRefundStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryLogQueryHandler() queries.GetInventoryLogQueryHandler {
	return queries.NewGetInventoryLogQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP adapter over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateRestockProductCommandHandler(),
		c.CreateUpdateProductStockCommandHandler(),
		c.CreateAssignOrderToDeliveryCommandHandler(),
		c.CreateVerifyHandoverCommandHandler(),
		c.CreateVerifyDeliveryHandoverCommandHandler(),
		c.CreateMarkDeliveryFailedCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateRequestReturnCommandHandler(),
		c.CreateUpdateReturnStatusCommandHandler(),
		c.CreateVerifyReturnCollectionCommandHandler(),
		c.CreateVerifyReturnToWarehouseCommandHandler(),
		c.CreateUpdateRefundStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetInventoryLogQueryHandler(),
	)
}

// CreateStaleOrderJob assembles the sweep that cancels orders stuck in
// Pending past the configured TTL.
func (c *CompositionRoot) CreateStaleOrderJob() *jobs.StaleOrderJob {
	return jobs.NewStaleOrderJob(
		c.uowFactory,
		c.CreateCancelOrderCommandHandler(),
		c.configs.StaleOrderTTLMinutes,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
