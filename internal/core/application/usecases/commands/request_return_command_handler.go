package commands

import (
	"context"
)

// RequestReturnCommandHandler opens a return request on a delivered order.
// The aggregate refuses when no line is returnable under its snapshotted
// policy.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestReturnCommandHandler creates a handler for return requests.
func NewRequestReturnCommandHandler(uowFactory OrderUoWFactory) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{uowFactory: uowFactory}
}

// Handle processes the return request command.
func (h RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) error {
	if err := cmd.Validate(); err != nil {
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

	if err := aggregate.RequestReturn(cmd.ReturnType(), cmd.Reason()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
