// Package queries contains read operations for the marketplace. Queries
// bypass the aggregate and read projection rows straight from the database,
// the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/pkg/guard"
)

var ErrGetPostedOrdersQueryIsNotConstructed = errors.New(
	"GetPostedOrdersQuery must be created via NewGetPostedOrdersQuery constructor",
)

// GetPostedOrdersQuery retrieves the open board: every order still in posted
// status and awaiting quotes. An optional baker ZIP code annotates each row
// with an estimated distance for display filtering.
type GetPostedOrdersQuery struct {
	bakerZipCode string

	guard guard.ConstructorGuard
}

// NewGetPostedOrdersQuery creates a query for the open order board.
// bakerZipCode may be empty; distance annotation is skipped then.
func NewGetPostedOrdersQuery(bakerZipCode string) GetPostedOrdersQuery {
	return GetPostedOrdersQuery{
		bakerZipCode: bakerZipCode,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPostedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPostedOrdersQueryIsNotConstructed)
}

// BakerZipCode returns the requesting baker's ZIP code, empty when absent.
func (q GetPostedOrdersQuery) BakerZipCode() string {
	return q.bakerZipCode
}

// GetPostedOrdersQueryResponse is one row of the open order board.
type GetPostedOrdersQueryResponse struct {
	ID                   kernel.UUID
	BuyerID              kernel.UUID
	CakeName             string
	DeliveryZipCode      string
	ExpectedDeliveryDate time.Time
	ActiveQuoteCount     int

	// DistanceMiles is set only when the query carried a baker ZIP code.
	// It is a display estimate, never a lifecycle input.
	DistanceMiles *int
}
