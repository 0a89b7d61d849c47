package commands

import (
	"context"
	"time"

	"crumbsy/internal/core/ports"
)

// RevokeQuoteCommandHandler deactivates a baker's quote. Revoking an
// already-revoked or missing quote is a no-op that still succeeds.
type RevokeQuoteCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRevokeQuoteCommandHandler creates a handler for quote revocation.
func NewRevokeQuoteCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) RevokeQuoteCommandHandler {
	return RevokeQuoteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order and revokes the baker's quote when it is active.
func (h *RevokeQuoteCommandHandler) Handle(ctx context.Context, cmd RevokeQuoteCommand) error {
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

	if !aggregate.RevokeQuote(cmd.BakerID(), time.Now().UTC()) {
		// Nothing changed; idempotent success without a write.
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, ports.EventQuoteRevoked, aggregate)
	return nil
}
