// Package ports defines the boundary contracts between the application core
// and its adapters.
package ports

import (
	"context"
	"time"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their embedded quotes and messages.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including new
	// or replaced quotes and appended messages.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its quotes and messages by id. Returns an
	// errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByBuyer retrieves every order owned by the buyer, in natural
	// storage order.
	GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error)

	// GetAllPostedBefore retrieves posted orders whose expected delivery
	// date lies strictly before the cutoff. Used by the stale-order sweep.
	GetAllPostedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
