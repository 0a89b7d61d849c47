package commands

import (
	"context"
	"log/slog"
	"time"

	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/ports"
)

// publishOrderEvent emits a lifecycle event after a successful commit.
// Publishing is best-effort: a nil publisher is a no-op and failures are
// logged, never propagated, so a broker outage cannot fail a committed
// mutation.
func publishOrderEvent(ctx context.Context, publisher ports.EventPublisher, name string, o *order.Order) {
	if publisher == nil {
		return
	}

	event := ports.OrderEvent{
		Event:      name,
		OrderID:    o.ID().String(),
		BuyerID:    o.BuyerID().String(),
		Status:     o.Status().String(),
		Price:      o.Price(),
		OccurredAt: time.Now().UTC(),
	}
	if baker := o.Baker(); baker != nil {
		event.BakerID = baker.String()
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish order event",
			"event", name, "order_id", event.OrderID, "error", err)
	}
}
