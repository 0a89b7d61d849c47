package commands

import (
	"errors"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/pkg/guard"
)

var ErrAssignBakerCommandIsNotConstructed = errors.New(
	"AssignBakerCommand must be created via NewAssignBakerCommand constructor",
)

// AssignBakerCommand accepts a baker for an order, normally after the buyer
// picked one of the competing quotes. The operation is deliberately
// unguarded: assigning an already-assigned order re-assigns.
type AssignBakerCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bakerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignBakerCommand creates a command to assign the baker to the order.
func NewAssignBakerCommand(orderID, bakerID kernel.UUID) (AssignBakerCommand, error) {
	cmd := AssignBakerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBakerID(bakerID),
	); err != nil {
		return AssignBakerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignBakerCommand) Validate() error {
	return c.guard.Validate(ErrAssignBakerCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignBakerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BakerID returns the baker to assign.
func (c AssignBakerCommand) BakerID() kernel.UUID {
	return c.bakerID
}

func (c *AssignBakerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignBakerCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}
