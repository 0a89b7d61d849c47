package commands

import (
	"errors"
	"time"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryZipCodeIsRequired      = errors.New("delivery ZIP code is required")
	ErrExpectedDeliveryDateIsRequired = errors.New("expected delivery date is required")
)

// CreateOrderCommand represents a buyer's request to post a new cake order.
// The cake design is captured as a snapshot; lead-time validation of the
// delivery date is the caller's concern.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyerID, design, "10001", deliveryDate)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to post order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	buyerID              kernel.UUID
	cakeDesign           order.CakeDesign
	deliveryZipCode      string
	expectedDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new order. Validates the
// identifiers, the ZIP code, and the presence of a delivery date.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	cakeDesign order.CakeDesign,
	deliveryZipCode string,
	expectedDeliveryDate time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		cakeDesign: cakeDesign,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setDeliveryZipCode(deliveryZipCode),
		cmd.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the posting buyer.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// CakeDesign returns the design snapshot to bind to the order.
func (c CreateOrderCommand) CakeDesign() order.CakeDesign {
	return c.cakeDesign
}

// DeliveryZipCode returns the delivery destination ZIP code.
func (c CreateOrderCommand) DeliveryZipCode() string {
	return c.deliveryZipCode
}

// ExpectedDeliveryDate returns the date the buyer expects delivery.
func (c CreateOrderCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setDeliveryZipCode(zip string) error {
	if zip == "" {
		return ErrDeliveryZipCodeIsRequired
	}
	c.deliveryZipCode = zip
	return nil
}

func (c *CreateOrderCommand) setExpectedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return ErrExpectedDeliveryDateIsRequired
	}
	c.expectedDeliveryDate = date
	return nil
}
