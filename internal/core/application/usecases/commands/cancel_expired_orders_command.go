package commands

import (
	"errors"

	"crumbsy/internal/pkg/guard"
)

var ErrCancelExpiredOrdersCommandIsNotConstructed = errors.New(
	"CancelExpiredOrdersCommand must be created via NewCancelExpiredOrdersCommand constructor",
)

// CancelExpiredOrdersCommand sweeps posted orders whose expected delivery
// date has passed without an assignment and cancels them.
type CancelExpiredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelExpiredOrdersCommand creates a command to sweep expired orders.
func NewCancelExpiredOrdersCommand() (CancelExpiredOrdersCommand, error) {
	return CancelExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredOrdersCommandIsNotConstructed)
}
