package commands

import (
	"context"
	"time"

	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/ports"
)

// CancelExpiredOrdersCommandHandler cancels posted orders whose expected
// delivery date is already behind us. Nobody bid, or the buyer never picked;
// either way the listing is dead weight on the open board.
type CancelExpiredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelExpiredOrdersCommandHandler creates a handler for the sweep.
func NewCancelExpiredOrdersCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelExpiredOrdersCommandHandler {
	return CancelExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle cancels every posted order past its expected delivery date and
// reports how many were swept.
func (h *CancelExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd CancelExpiredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	expired, err := orderRepo.GetAllPostedBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range expired {
		if err = aggregate.SetStatus(order.Cancelled, "", now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range expired {
		publishOrderEvent(ctx, h.publisher, ports.EventOrderCancelled, aggregate)
	}

	return len(expired), nil
}
