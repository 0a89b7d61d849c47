package commands_test

import (
	"context"
	"time"

	"crumbsy/internal/core/application/usecases/commands"
	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPostedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderEvent(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Shared fixtures for the handler tests.

var handlerTestNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func handlerTestDesign() order.CakeDesign {
	return order.CakeDesign{
		ID:    "design-1",
		Name:  "Birthday Classic",
		Shape: "round",
		Layers: []order.CakeLayer{
			{Flavor: "vanilla", Color: "white", Frosting: "buttercream", FrostingColor: "pink"},
		},
		Buttercream: order.Buttercream{Flavor: "vanilla", Color: "white"},
		Toppings:    []string{"sprinkles"},
		TopText:     "Happy Birthday",
	}
}

func handlerTestOrder(id, buyerID kernel.UUID) *order.Order {
	o, err := order.NewOrder(id, buyerID, handlerTestDesign(), "10001", handlerTestNow.Add(14*24*time.Hour), handlerTestNow)
	if err != nil {
		panic(err)
	}
	return o
}
