package commands_test

import (
	"errors"
	"testing"
	"time"

	"crumbsy/internal/core/application/usecases/commands"
	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelExpiredOrdersCommandHandler_Handle_SweepsExpiredOrders(t *testing.T) {
	ctx := t.Context()

	first := handlerTestOrder(kernel.NewUUID(), kernel.NewUUID())
	second := handlerTestOrder(kernel.NewUUID(), kernel.NewUUID())
	expired := []*order.Order{first, second}

	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPostedBefore", ctx, mock.AnythingOfType("time.Time")).Return(expired, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelExpiredOrdersCommandHandler(factory, publisher)
	swept, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, swept)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelExpiredOrdersCommandHandler_Handle_NothingToSweep(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPostedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelExpiredOrdersCommandHandler(factory, nil)
	swept, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, swept)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCancelExpiredOrdersCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPostedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("query error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelExpiredOrdersCommandHandler(factory, nil)
	swept, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "query error")
	assert.Zero(t, swept)
}

// Sweep uses time.Now as the cutoff passed to the repository.
func TestCancelExpiredOrdersCommandHandler_Handle_CutoffIsNow(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	before := time.Now().UTC()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPostedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelExpiredOrdersCommandHandler(factory, nil)
	_, err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	after := time.Now().UTC()
	cutoff := orderRepo.Calls[0].Arguments[1].(time.Time)
	assert.False(t, cutoff.Before(before))
	assert.False(t, cutoff.After(after))
}
