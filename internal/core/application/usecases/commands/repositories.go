// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, transaction management, persistence, and post-commit event
// publishing.
package commands

import (
	"context"

	"crumbsy/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each mutating command runs inside its own transaction keyed by
// the order it touches, which is the per-order mutual exclusion discipline
// the lifecycle needs once multiple writers exist.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
