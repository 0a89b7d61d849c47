package commands

import (
	"context"
	"time"
)

// AddMessageCommandHandler appends a chat message to an order. Messages are
// append-only and never trigger lifecycle events.
type AddMessageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddMessageCommandHandler creates a handler for chat messages.
func NewAddMessageCommandHandler(uowFactory OrderUoWFactory) AddMessageCommandHandler {
	return AddMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and appends the message.
func (h *AddMessageCommandHandler) Handle(ctx context.Context, cmd AddMessageCommand) error {
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

	if _, err = aggregate.AddMessage(
		cmd.SenderID(),
		cmd.SenderType(),
		cmd.Text(),
		cmd.Image(),
		nil,
		false,
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
