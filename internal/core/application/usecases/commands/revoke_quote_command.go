package commands

import (
	"errors"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/pkg/guard"
)

var ErrRevokeQuoteCommandIsNotConstructed = errors.New(
	"RevokeQuoteCommand must be created via NewRevokeQuoteCommand constructor",
)

// RevokeQuoteCommand withdraws a baker's quote from an order. Revocation is
// idempotent and preserves the quote record for history.
type RevokeQuoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bakerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRevokeQuoteCommand creates a command to revoke the baker's quote.
func NewRevokeQuoteCommand(orderID, bakerID kernel.UUID) (RevokeQuoteCommand, error) {
	cmd := RevokeQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBakerID(bakerID),
	); err != nil {
		return RevokeQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRevokeQuoteCommandIsNotConstructed)
}

// OrderID returns the order holding the quote.
func (c RevokeQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BakerID returns the revoking baker.
func (c RevokeQuoteCommand) BakerID() kernel.UUID {
	return c.bakerID
}

func (c *RevokeQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RevokeQuoteCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}
