package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/ports"
)

// UpdateOrderStatusCommandHandler writes the fulfillment status. When an
// order goes out for delivery without a code on file, the handler mints a
// 6-digit OTP the buyer reads back at delivery handoff.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order and applies the status, minting an OTP when needed.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	otpCode := cmd.OTPCode()
	if otpCode == "" && cmd.Status() == order.OutForDelivery && aggregate.OTPCode() == "" {
		if otpCode, err = generateOTP(); err != nil {
			return err
		}
	}

	if err = aggregate.SetStatus(cmd.Status(), otpCode, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, ports.EventOrderStatusChanged, aggregate)
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
