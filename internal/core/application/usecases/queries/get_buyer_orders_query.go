package queries

import (
	"errors"
	"time"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves every order a buyer has posted, in any
// status, for their order history screen.
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for a buyer's order history.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID) (GetBuyerOrdersQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return GetBuyerOrdersQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose orders are requested.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// GetBuyerOrdersQueryResponse is one row of a buyer's order history.
type GetBuyerOrdersQueryResponse struct {
	ID                   kernel.UUID
	Status               string
	CakeName             string
	DeliveryZipCode      string
	ExpectedDeliveryDate time.Time
	Price                *float64
	BakerID              *kernel.UUID
	ActiveQuoteCount     int
	UpdatedAt            time.Time
}
