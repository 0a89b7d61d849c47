package commands_test

import (
	"testing"

	"crumbsy/internal/core/application/usecases/commands"
	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_AdvancesStatus(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	testOrder := handlerTestOrder(orderID, kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.InProgress, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, testOrder.Status())
	assert.Empty(t, testOrder.OTPCode())

	event := publisher.Calls[0].Arguments[1].(ports.OrderEvent)
	assert.Equal(t, ports.EventOrderStatusChanged, event.Event)
	assert.Equal(t, "in-progress", event.Status)
}

func TestUpdateOrderStatusCommandHandler_Handle_MintsOTPOnOutForDelivery(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	testOrder := handlerTestOrder(orderID, kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.OutForDelivery, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, testOrder.Status())
	assert.Len(t, testOrder.OTPCode(), 6)
}

func TestUpdateOrderStatusCommandHandler_Handle_CallerSuppliedOTPWins(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	testOrder := handlerTestOrder(orderID, kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.OutForDelivery, "424242")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "424242", testOrder.OTPCode())
}

func TestUpdateOrderStatusCommandHandler_Handle_ExistingOTPIsKept(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	testOrder := handlerTestOrder(orderID, kernel.NewUUID())
	require.NoError(t, testOrder.SetStatus(order.OutForDelivery, "111111", handlerTestNow))

	// Re-setting out-for-delivery with no code must not rotate the stored one.
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.OutForDelivery, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "111111", testOrder.OTPCode())
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Status(99), "")
	require.Error(t, err)
}
