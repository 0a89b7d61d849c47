package ports

import (
	"context"
	"time"
)

// Order lifecycle event names published to the message broker.
const (
	EventOrderCreated       = "order.created"
	EventOrderQuoted        = "order.quoted"
	EventQuoteRevoked       = "order.quote_revoked"
	EventBakerAssigned      = "order.baker_assigned"
	EventOrderCancelled     = "order.cancelled"
	EventOrderDeclined      = "order.declined"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the payload published after a successful commit of a
// lifecycle mutation. Consumers drive notifications and dashboards; the
// lifecycle rules never depend on delivery.
type OrderEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	BuyerID    string    `json:"buyer_id"`
	BakerID    string    `json:"baker_id,omitempty"`
	Status     string    `json:"status"`
	Price      *float64  `json:"price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order lifecycle events to interested consumers.
// Publishing is best-effort: implementations report errors, callers log and
// continue.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
