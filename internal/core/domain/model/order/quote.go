package order

import (
	"time"

	"crumbsy/internal/core/domain/model/kernel"
)

// Quote is a baker's offer on a posted order. The aggregate keeps at most one
// quote per baker: resubmission replaces the previous quote's content in
// place, and revocation deactivates it while preserving the record for
// history. Inactive quotes never count toward the buyer-facing quote count.
type Quote struct {
	id                   kernel.UUID
	bakerID              kernel.UUID
	price                float64
	modificationRequests string
	message              string
	timestamp            time.Time
	isActive             bool
}

// newQuote is called only by Order.SubmitQuote; quotes do not exist outside
// their order.
func newQuote(bakerID kernel.UUID, price float64, modificationRequests, message string, now time.Time) *Quote {
	return &Quote{
		id:                   kernel.NewUUID(),
		bakerID:              bakerID,
		price:                price,
		modificationRequests: modificationRequests,
		message:              message,
		timestamp:            now,
		isActive:             true,
	}
}

// RestoreQuote reconstructs a quote from persistence. Intended for repository
// implementations; application code goes through Order.SubmitQuote.
func RestoreQuote(
	id kernel.UUID,
	bakerID kernel.UUID,
	price float64,
	modificationRequests string,
	message string,
	timestamp time.Time,
	isActive bool,
) (*Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := bakerID.Validate(); err != nil {
		return nil, err
	}

	return &Quote{
		id:                   id,
		bakerID:              bakerID,
		price:                price,
		modificationRequests: modificationRequests,
		message:              message,
		timestamp:            timestamp,
		isActive:             isActive,
	}, nil
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// BakerID returns the baker who submitted the quote.
func (q *Quote) BakerID() kernel.UUID {
	return q.bakerID
}

// Price returns the offered price. Always positive for quotes created
// through SubmitQuote.
func (q *Quote) Price() float64 {
	return q.price
}

// ModificationRequests returns the baker's proposed changes to the design,
// empty when the baker offered the design as-is.
func (q *Quote) ModificationRequests() string {
	return q.modificationRequests
}

// Message returns the baker's note accompanying the quote.
func (q *Quote) Message() string {
	return q.message
}

// Timestamp returns when the quote content was last submitted.
func (q *Quote) Timestamp() time.Time {
	return q.timestamp
}

// IsActive reports whether the quote is currently meaningful. Revoked quotes
// stay stored with isActive=false.
func (q *Quote) IsActive() bool {
	return q.isActive
}

// replace overwrites the quote content with a resubmission, latest wins.
// The quote id is retained; only the payload and timestamp change.
func (q *Quote) replace(price float64, modificationRequests, message string, now time.Time) {
	q.price = price
	q.modificationRequests = modificationRequests
	q.message = message
	q.timestamp = now
	q.isActive = true
}

// deactivate marks the quote revoked. Reports whether the quote was active,
// so callers can make revocation idempotent.
func (q *Quote) deactivate() bool {
	if !q.isActive {
		return false
	}
	q.isActive = false
	return true
}
