package queries

import (
	"context"
	"database/sql"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads a buyer's order history from the
// database.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer history queries.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the buyer's orders, most recently
// updated first.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]GetBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetBuyerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.cake_name,
			o.delivery_zip_code,
			o.expected_delivery_date,
			o.price,
			o.baker_id,
			(SELECT COUNT(*) FROM order_quotes q WHERE q.order_id = o.id AND q.is_active) AS active_quotes,
			o.updated_at
		FROM orders o
		WHERE o.buyer_id = ?
		ORDER BY o.updated_at DESC
	`, query.BuyerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetBuyerOrdersQueryResponse
		var id uuid.UUID
		var status order.Status
		var bakerID uuid.NullUUID
		var price sql.NullFloat64

		if err = rows.Scan(
			&id,
			&status,
			&resp.CakeName,
			&resp.DeliveryZipCode,
			&resp.ExpectedDeliveryDate,
			&price,
			&bakerID,
			&resp.ActiveQuoteCount,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = status.String()

		if price.Valid {
			resp.Price = &price.Float64
		}
		if bakerID.Valid {
			baker, idErr := kernel.UUIDFromBytes(bakerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.BakerID = &baker
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
