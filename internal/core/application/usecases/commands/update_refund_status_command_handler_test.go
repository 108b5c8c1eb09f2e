package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/handover"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateRefundStatusCommandHandler_Handle_ReceivedReturn(t *testing.T) {
	ctx := t.Context()
	o := makeTestOrder(t, makeTestProduct(t))
	deliverTestOrder(t, o)
	require.NoError(t, o.RequestReturn(order.RefundReturn, "wrong size"))
	require.NoError(t, o.ApproveReturn(handover.DefaultLength))
	require.NoError(t, o.VerifyReturnCollection(o.ReturnOTP().String(), ""))
	require.NoError(t, o.VerifyReturnToWarehouse(o.ReturnHandoverCode().String()))

	cmd, err := commands.NewUpdateRefundStatusCommand(o.ID(), order.BankTransfer, staff.Admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateRefundStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Refunded, o.Status())
	assert.Equal(t, order.ReturnCompleted, o.ReturnStatus())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateRefundStatusCommandHandler_Handle_ReturnStillInTransit(t *testing.T) {
	ctx := t.Context()
	o := makeTestOrder(t, makeTestProduct(t))
	deliverTestOrder(t, o)
	require.NoError(t, o.RequestReturn(order.RefundReturn, "wrong size"))
	require.NoError(t, o.ApproveReturn(handover.DefaultLength))

	cmd, err := commands.NewUpdateRefundStatusCommand(o.ID(), order.Card, staff.Admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateRefundStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// The payout is recorded while the goods are still with the customer.
	require.NoError(t, err)
	assert.Equal(t, order.ReturnProcessing, o.Status())
	assert.Equal(t, order.ReturnCompleted, o.ReturnStatus())
	assert.Equal(t, order.TransactionRefunded, o.Transaction().Status())
	uow.AssertExpectations(t)
}

func TestUpdateRefundStatusCommandHandler_Handle_NoReturnOnFile(t *testing.T) {
	ctx := t.Context()
	o := makeTestOrder(t, makeTestProduct(t))
	deliverTestOrder(t, o)

	cmd, err := commands.NewUpdateRefundStatusCommand(o.ID(), order.Card, staff.Admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateRefundStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, o.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateRefundStatusCommandHandler_Handle_RoleCheck(t *testing.T) {
	ctx := t.Context()
	o := makeTestOrder(t, makeTestProduct(t))

	cmd, err := commands.NewUpdateRefundStatusCommand(o.ID(), order.Card, staff.Delivery)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewUpdateRefundStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionUnmet)
	factory.AssertNotCalled(t, "Create")
}
