package commands

import (
	"errors"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/pkg/guard"
)

var (
	ErrSendQuoteCommandIsNotConstructed = errors.New(
		"SendQuoteCommand must be created via NewSendQuoteCommand constructor",
	)
	ErrQuotePriceIsInvalid    = errors.New("quote price must be greater than 0")
	ErrQuoteMessageIsRequired = errors.New("quote message is required")
)

// SendQuoteCommand represents a baker's offer on a posted order. A
// resubmission by the same baker replaces the previous quote's content,
// latest wins.
type SendQuoteCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	bakerID              kernel.UUID
	price                float64
	modificationRequests string
	message              string

	guard guard.ConstructorGuard
}

// NewSendQuoteCommand creates a command to submit a quote. Requires a
// positive price and a non-empty message; modificationRequests is optional.
func NewSendQuoteCommand(
	orderID kernel.UUID,
	bakerID kernel.UUID,
	price float64,
	modificationRequests string,
	message string,
) (SendQuoteCommand, error) {
	cmd := SendQuoteCommand{
		modificationRequests: modificationRequests,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBakerID(bakerID),
		cmd.setPrice(price),
		cmd.setMessage(message),
	); err != nil {
		return SendQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSendQuoteCommandIsNotConstructed)
}

// OrderID returns the order the quote targets.
func (c SendQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BakerID returns the quoting baker.
func (c SendQuoteCommand) BakerID() kernel.UUID {
	return c.bakerID
}

// Price returns the offered price.
func (c SendQuoteCommand) Price() float64 {
	return c.price
}

// ModificationRequests returns the baker's proposed design changes.
func (c SendQuoteCommand) ModificationRequests() string {
	return c.modificationRequests
}

// Message returns the note accompanying the quote.
func (c SendQuoteCommand) Message() string {
	return c.message
}

func (c *SendQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SendQuoteCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}

func (c *SendQuoteCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrQuotePriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *SendQuoteCommand) setMessage(message string) error {
	if message == "" {
		return ErrQuoteMessageIsRequired
	}
	c.message = message
	return nil
}
