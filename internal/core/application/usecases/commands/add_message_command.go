package commands

import (
	"errors"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/pkg/errs"
	"crumbsy/internal/pkg/guard"
)

var (
	ErrAddMessageCommandIsNotConstructed = errors.New(
		"AddMessageCommand must be created via NewAddMessageCommand constructor",
	)
	ErrMessageContentIsRequired = errs.NewValueIsRequiredError("text or image")
)

// AddMessageCommand appends a chat message to an order's conversation log.
// At least one of text or image must be present.
type AddMessageCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	senderID   kernel.UUID
	senderType order.Role
	text       string
	image      string

	guard guard.ConstructorGuard
}

// NewAddMessageCommand creates a command to add a chat message.
func NewAddMessageCommand(orderID, senderID kernel.UUID, senderType order.Role, text, image string) (AddMessageCommand, error) {
	cmd := AddMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSenderID(senderID),
		cmd.setSenderType(senderType),
		cmd.setContent(text, image),
	); err != nil {
		return AddMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMessageCommand) Validate() error {
	return c.guard.Validate(ErrAddMessageCommandIsNotConstructed)
}

// OrderID returns the order holding the conversation.
func (c AddMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SenderID returns the message author.
func (c AddMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// SenderType returns the author's role.
func (c AddMessageCommand) SenderType() order.Role {
	return c.senderType
}

// Text returns the message body, possibly empty when an image is attached.
func (c AddMessageCommand) Text() string {
	return c.text
}

// Image returns the attached image reference, possibly empty.
func (c AddMessageCommand) Image() string {
	return c.image
}

func (c *AddMessageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddMessageCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	c.senderID = senderID
	return nil
}

func (c *AddMessageCommand) setSenderType(senderType order.Role) error {
	if err := senderType.Validate(); err != nil {
		return err
	}
	c.senderType = senderType
	return nil
}

func (c *AddMessageCommand) setContent(text, image string) error {
	if text == "" && image == "" {
		return ErrMessageContentIsRequired
	}
	c.text = text
	c.image = image
	return nil
}
