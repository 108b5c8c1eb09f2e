package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// UpdateReturnStatusCommandHandler applies the admin decision on a return
// request. Approval mints the return OTP and handover code; rejection puts
// the order back to Delivered.
type UpdateReturnStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	codeLength int
}

// NewUpdateReturnStatusCommandHandler creates a handler for return decisions.
// codeLength is the number of digits in the minted return codes.
func NewUpdateReturnStatusCommandHandler(uowFactory OrderUoWFactory, codeLength int) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{
		uowFactory: uowFactory,
		codeLength: codeLength,
	}
}

// Handle processes the return decision command.
func (h UpdateReturnStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanManageReturns(), cmd.ActorRole(), "decide return requests"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Decision() == order.ReturnApproved {
		err = aggregate.ApproveReturn(h.codeLength)
	} else {
		err = aggregate.RejectReturn(cmd.Note())
	}
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
