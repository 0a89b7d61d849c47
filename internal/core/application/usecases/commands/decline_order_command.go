package commands

import (
	"errors"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand lets an assigned baker back out within the grace
// window, returning the order to the open pool.
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bakerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand creates a command for the baker to decline the order.
func NewDeclineOrderCommand(orderID, bakerID kernel.UUID) (DeclineOrderCommand, error) {
	cmd := DeclineOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBakerID(bakerID),
	); err != nil {
		return DeclineOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// OrderID returns the order to decline.
func (c DeclineOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BakerID returns the declining baker.
func (c DeclineOrderCommand) BakerID() kernel.UUID {
	return c.bakerID
}

func (c *DeclineOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeclineOrderCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}
