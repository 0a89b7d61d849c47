package commands

import (
	"context"
	"time"

	"crumbsy/internal/core/ports"
)

// AssignBakerCommandHandler binds a baker to an order, starting the
// post-assignment grace window. Competing quotes are not deactivated; they
// remain stored and active but are no longer actionable.
type AssignBakerCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignBakerCommandHandler creates a handler for baker assignment.
func NewAssignBakerCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) AssignBakerCommandHandler {
	return AssignBakerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order and assigns the baker unconditionally.
func (h *AssignBakerCommandHandler) Handle(ctx context.Context, cmd AssignBakerCommand) error {
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

	if err = aggregate.AssignBaker(cmd.BakerID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, ports.EventBakerAssigned, aggregate)
	return nil
}
