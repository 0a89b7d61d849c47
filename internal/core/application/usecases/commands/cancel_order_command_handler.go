package commands

import (
	"context"
	"time"

	"crumbsy/internal/core/ports"
)

// CancelOrderCommandHandler applies a buyer cancellation. When the window
// rules reject the cancellation the handler returns nil without writing;
// callers observe the unchanged status on the next read.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for buyer cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order and cancels it when the window rules permit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if !aggregate.Cancel(cmd.BuyerID(), time.Now().UTC()) {
		// Window closed or wrong buyer; nothing to persist.
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, ports.EventOrderCancelled, aggregate)
	return nil
}
