package commands

import (
	"context"
	"time"

	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/ports"
)

// CreateOrderCommandHandler posts a new order in posted status with empty
// quote and message collections, then announces it to bakers via the event
// publisher.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order posting.
// publisher may be nil when event publishing is disabled.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command inside a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		cmd.CakeDesign(),
		cmd.DeliveryZipCode(),
		cmd.ExpectedDeliveryDate(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, ports.EventOrderCreated, newOrder)
	return nil
}
