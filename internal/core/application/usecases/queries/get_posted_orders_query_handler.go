package queries

import (
	"context"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPostedOrdersQueryHandler reads the open order board from the database.
// Quote counts come from a correlated subquery so a board render stays a
// single round trip.
type GetPostedOrdersQueryHandler struct {
	db        *gorm.DB
	estimator services.DistanceEstimator
}

// NewGetPostedOrdersQueryHandler creates a handler for open board queries.
func NewGetPostedOrdersQueryHandler(db *gorm.DB) GetPostedOrdersQueryHandler {
	return GetPostedOrdersQueryHandler{
		db:        db,
		estimator: services.NewDistanceEstimator(),
	}
}

// Handle executes the query and returns posted orders ordered by creation
// time, oldest first.
func (h GetPostedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPostedOrdersQuery,
) ([]GetPostedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPostedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			o.cake_name,
			o.delivery_zip_code,
			o.expected_delivery_date,
			(SELECT COUNT(*) FROM order_quotes q WHERE q.order_id = o.id AND q.is_active) AS active_quotes
		FROM orders o
		WHERE o.status = ?
		ORDER BY o.created_at
	`, order.Posted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPostedOrdersQueryResponse
		var id, buyerID uuid.UUID

		if err = rows.Scan(
			&id,
			&buyerID,
			&resp.CakeName,
			&resp.DeliveryZipCode,
			&resp.ExpectedDeliveryDate,
			&resp.ActiveQuoteCount,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}

		if query.BakerZipCode() != "" {
			miles := h.estimator.EstimateMiles(query.BakerZipCode(), resp.DeliveryZipCode)
			resp.DistanceMiles = &miles
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
