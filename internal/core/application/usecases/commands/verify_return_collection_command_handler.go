package commands

import (
	"context"
)

// VerifyReturnCollectionCommandHandler confirms the driver collected the
// return from the customer. No stock effect: the goods are in transit, not
// back on the shelf.
type VerifyReturnCollectionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyReturnCollectionCommandHandler creates a handler for the return
// collection check.
func NewVerifyReturnCollectionCommandHandler(uowFactory OrderUoWFactory) VerifyReturnCollectionCommandHandler {
	return VerifyReturnCollectionCommandHandler{uowFactory: uowFactory}
}

// Handle processes the return collection command.
func (h VerifyReturnCollectionCommandHandler) Handle(ctx context.Context, cmd VerifyReturnCollectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanDeliverOrders(), cmd.ActorRole(), "collect returns"); err != nil {
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

	if err := aggregate.VerifyReturnCollection(cmd.OTP(), cmd.ImagePath()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
