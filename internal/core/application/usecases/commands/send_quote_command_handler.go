package commands

import (
	"context"
	"time"

	"crumbsy/internal/core/ports"
)

// SendQuoteCommandHandler records a baker's quote on an order. The aggregate
// enforces the one-active-quote-per-baker rule and appends the synthesized
// quote chat message.
type SendQuoteCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewSendQuoteCommandHandler creates a handler for quote submission.
func NewSendQuoteCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) SendQuoteCommandHandler {
	return SendQuoteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, submits or replaces the baker's quote, and
// persists the aggregate.
func (h *SendQuoteCommandHandler) Handle(ctx context.Context, cmd SendQuoteCommand) error {
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

	if _, err = aggregate.SubmitQuote(
		cmd.BakerID(),
		cmd.Price(),
		cmd.ModificationRequests(),
		cmd.Message(),
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, ports.EventOrderQuoted, aggregate)
	return nil
}
