package commands

import (
	"context"
	"time"

	"crumbsy/internal/core/ports"
)

// DeclineOrderCommandHandler reverts an assignment inside the grace window.
// A lapsed window is a successful no-op, mirroring buyer cancellation.
type DeclineOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewDeclineOrderCommandHandler creates a handler for baker decline.
func NewDeclineOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order and reverts the assignment when the grace window
// still permits it.
func (h *DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.Decline(cmd.BakerID(), time.Now().UTC()) {
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, ports.EventOrderDeclined, aggregate)
	return nil
}
