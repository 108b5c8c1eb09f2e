package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/handover"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeAssignCommand(t *testing.T, orderID kernel.UUID, role staff.Role) commands.AssignOrderToDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewAssignOrderToDeliveryCommand(orderID, kernel.NewUUID(), kernel.NewUUID(), role)
	require.NoError(t, err)
	return cmd
}

func TestAssignOrderToDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := makeTestProduct(t)
	o := makeTestOrder(t, p)
	cmd := makeAssignCommand(t, o.ID(), staff.Shipment)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetMany", ctx, mock.AnythingOfType("[]kernel.UUID")).
			Return([]*product.Product{p}, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Update", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("AddAll", ctx, mock.AnythingOfType("[]inventory.Entry")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderToDeliveryCommandHandler(factory, services.NewStockLedger(false), handover.DefaultLength)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Packed, o.Status())
	assert.False(t, o.HandoverCode().IsZero())
	assert.NotNil(t, o.AssignedShipment())
	assert.NotNil(t, o.AssignedDelivery())
	assert.Equal(t, 8, p.Quantity())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignOrderToDeliveryCommandHandler_Handle_RetryIsNoOp(t *testing.T) {
	ctx := t.Context()
	p := makeTestProduct(t)
	o := makeTestOrder(t, p)
	require.NoError(t, o.Pack(kernel.NewUUID(), kernel.NewUUID(), handover.DefaultLength))
	firstCode := o.HandoverCode().String()

	cmd := makeAssignCommand(t, o.ID(), staff.Shipment)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderToDeliveryCommandHandler(factory, services.NewStockLedger(false), handover.DefaultLength)
	err := handler.Handle(ctx, cmd)

	// The retry succeeds without touching stock or reminting the code.
	require.NoError(t, err)
	assert.Equal(t, firstCode, o.HandoverCode().String())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignOrderToDeliveryCommandHandler_Handle_RoleCheck(t *testing.T) {
	ctx := t.Context()
	cmd := makeAssignCommand(t, kernel.NewUUID(), staff.Warehouse)

	factory := new(MockFulfillmentUoWFactory)
	handler := commands.NewAssignOrderToDeliveryCommandHandler(factory, services.NewStockLedger(false), handover.DefaultLength)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionUnmet)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderToDeliveryCommandHandler_Handle_Oversell(t *testing.T) {
	ctx := t.Context()
	p, err := product.NewProduct(kernel.NewUUID(), "Ceramic Mug", 14.50, 1, product.Return7Days)
	require.NoError(t, err)
	o := makeTestOrder(t, p) // wants 2 units
	cmd := makeAssignCommand(t, o.ID(), staff.Shipment)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetMany", ctx, mock.AnythingOfType("[]kernel.UUID")).
			Return([]*product.Product{p}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderToDeliveryCommandHandler(factory, services.NewStockLedger(false), handover.DefaultLength)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionUnmet)
	assert.Equal(t, 1, p.Quantity())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignOrderToDeliveryCommandHandler_Handle_GetOrderError(t *testing.T) {
	ctx := t.Context()
	cmd := makeAssignCommand(t, kernel.NewUUID(), staff.Admin)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderToDeliveryCommandHandler(factory, services.NewStockLedger(false), handover.DefaultLength)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}
