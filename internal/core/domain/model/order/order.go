package order

import (
	"errors"
	"fmt"
	"time"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/pkg/errs"
)

// Time windows governing the post-assignment grace period.
const (
	// AssignmentGraceWindow is how long after assignment either party may
	// still unwind it (buyer cancel, baker decline).
	AssignmentGraceWindow = 24 * time.Hour

	// CancellationLeadTime is the minimum remaining time before the expected
	// delivery date for a buyer to cancel an assigned order. Leaves enough
	// room for rebidding. The baker decline predicate intentionally has no
	// such condition.
	CancellationLeadTime = 3 * 24 * time.Hour
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDeliveryZipCodeIsRequired is returned when an order is created
	// without a delivery ZIP code.
	ErrDeliveryZipCodeIsRequired = errors.New("delivery ZIP code is required")

	// ErrExpectedDeliveryDateIsRequired is returned when an order is created
	// without an expected delivery date.
	ErrExpectedDeliveryDateIsRequired = errors.New("expected delivery date is required")

	// ErrQuotePriceIsInvalid is returned when a quote is submitted with a
	// non-positive price.
	ErrQuotePriceIsInvalid = errors.New("quote price must be greater than 0")

	// ErrQuoteMessageIsRequired is returned when a quote is submitted
	// without a message.
	ErrQuoteMessageIsRequired = errors.New("quote message is required")
)

// Order is the aggregate root of the cake marketplace lifecycle. It owns the
// quotes submitted against it and its conversation log exclusively; neither
// is shared across orders.
//
// Invariants:
//   - buyerID is set at creation and never changes
//   - the cake design is a value snapshot taken at creation
//   - at most one quote per baker is active at any time
//   - messages are append-only
//   - updatedAt is bumped on every mutation
//   - assignedAt is set exactly when a baker is assigned and cleared when
//     the assignment is declined
//
// Guarded operations (Cancel, Decline) never fail with an error for business
// reasons: when the eligibility predicate does not hold they leave the order
// untouched and report false. Callers surface their own user-facing message.
type Order struct {
	id      kernel.UUID
	buyerID kernel.UUID
	bakerID *kernel.UUID

	cakeDesign           CakeDesign
	deliveryZipCode      string
	expectedDeliveryDate time.Time

	status  Status
	price   *float64
	otpCode string

	createdAt  time.Time
	updatedAt  time.Time
	assignedAt *time.Time

	messages []*ChatMessage

	// quotes is keyed by baker so resubmission is a replacement by
	// construction, not a dedup pass. quoteOrder preserves first-submission
	// ordering for display.
	quotes     map[kernel.UUID]*Quote
	quoteOrder []kernel.UUID

	isConstructed bool
}

// NewOrder creates a posted order bound to a snapshot of the given cake
// design. createdAt and updatedAt are both set to now. Lead-time validation
// of the delivery date is the caller's concern; the engine accepts any
// future-dated order.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	design CakeDesign,
	deliveryZipCode string,
	expectedDeliveryDate time.Time,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryZipCode == "" {
		return nil, ErrDeliveryZipCodeIsRequired
	}
	if expectedDeliveryDate.IsZero() {
		return nil, ErrExpectedDeliveryDateIsRequired
	}

	return &Order{
		id:                   id,
		buyerID:              buyerID,
		cakeDesign:           design.clone(),
		deliveryZipCode:      deliveryZipCode,
		expectedDeliveryDate: expectedDeliveryDate,
		status:               Posted,
		createdAt:            now,
		updatedAt:            now,
		messages:             make([]*ChatMessage, 0),
		quotes:               make(map[kernel.UUID]*Quote),
		quoteOrder:           make([]kernel.UUID, 0),
		isConstructed:        true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence, including its quotes
// and messages. Quotes are keyed by their baker; when the stored data holds
// several quotes for one baker the last one wins, mirroring the replacement
// rule on submission.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	bakerID *kernel.UUID,
	design CakeDesign,
	deliveryZipCode string,
	expectedDeliveryDate time.Time,
	status Status,
	price *float64,
	otpCode string,
	createdAt time.Time,
	updatedAt time.Time,
	assignedAt *time.Time,
	quotes []*Quote,
	messages []*ChatMessage,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if bakerID != nil {
		if err := bakerID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:                   id,
		buyerID:              buyerID,
		bakerID:              bakerID,
		cakeDesign:           design.clone(),
		deliveryZipCode:      deliveryZipCode,
		expectedDeliveryDate: expectedDeliveryDate,
		status:               status,
		price:                price,
		otpCode:              otpCode,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		assignedAt:           assignedAt,
		messages:             make([]*ChatMessage, 0, len(messages)),
		quotes:               make(map[kernel.UUID]*Quote, len(quotes)),
		quoteOrder:           make([]kernel.UUID, 0, len(quotes)),
		isConstructed:        true,
	}

	o.messages = append(o.messages, messages...)
	for _, q := range quotes {
		if q == nil {
			return nil, errs.NewValueIsRequiredError("quote")
		}
		o.storeQuote(q)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed. Call when
// reconstructing orders from external data.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the owning buyer. Immutable after creation.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Baker returns the assigned baker's ID, nil while unassigned.
func (o *Order) Baker() *kernel.UUID {
	return o.bakerID
}

// CakeDesign returns a copy of the design snapshot taken at creation.
func (o *Order) CakeDesign() CakeDesign {
	return o.cakeDesign.clone()
}

// DeliveryZipCode returns the destination ZIP code.
func (o *Order) DeliveryZipCode() string {
	return o.deliveryZipCode
}

// ExpectedDeliveryDate returns the date the buyer expects delivery.
func (o *Order) ExpectedDeliveryDate() time.Time {
	return o.expectedDeliveryDate
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Price returns the accepted price, nil before a quote is accepted.
func (o *Order) Price() *float64 {
	return o.price
}

// OTPCode returns the delivery-confirmation secret, empty until the order
// goes out for delivery.
func (o *Order) OTPCode() string {
	return o.otpCode
}

// CreatedAt returns the creation instant. Immutable.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignedAt returns when the current baker was assigned, nil while
// unassigned.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// Messages returns the conversation log in append order. The returned slice
// is a copy; the entries are shared immutable records.
func (o *Order) Messages() []*ChatMessage {
	out := make([]*ChatMessage, len(o.messages))
	copy(out, o.messages)
	return out
}

// Quotes returns all quote records, active and revoked, in first-submission
// order.
func (o *Order) Quotes() []*Quote {
	out := make([]*Quote, 0, len(o.quoteOrder))
	for _, bakerID := range o.quoteOrder {
		out = append(out, o.quotes[bakerID])
	}
	return out
}

// BakerQuote returns the baker's quote if it is currently active, nil
// otherwise. Revoked quotes are invisible here even though they stay stored.
func (o *Order) BakerQuote(bakerID kernel.UUID) *Quote {
	q, ok := o.quotes[bakerID]
	if !ok || !q.isActive {
		return nil
	}
	return q
}

// HasActiveBakerQuote reports whether the baker currently has an active
// quote on this order.
func (o *Order) HasActiveBakerQuote(bakerID kernel.UUID) bool {
	return o.BakerQuote(bakerID) != nil
}

// ActiveQuoteCount returns the buyer-facing quote count: active quotes only.
func (o *Order) ActiveQuoteCount() int {
	count := 0
	for _, q := range o.quotes {
		if q.isActive {
			count++
		}
	}
	return count
}

// SubmitQuote records a baker's offer. If the baker already has a quote on
// this order the previous content is replaced in place (latest wins, same
// quote id) and the quote is reactivated. A chat message tagged as a quote
// is appended carrying the price.
//
// Requires price > 0 and a non-empty message.
func (o *Order) SubmitQuote(bakerID kernel.UUID, price float64, modificationRequests, message string, now time.Time) (*Quote, error) {
	if err := bakerID.Validate(); err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, ErrQuotePriceIsInvalid
	}
	if message == "" {
		return nil, ErrQuoteMessageIsRequired
	}

	q, exists := o.quotes[bakerID]
	if exists {
		q.replace(price, modificationRequests, message, now)
	} else {
		q = newQuote(bakerID, price, modificationRequests, message, now)
		o.storeQuote(q)
	}

	quotedPrice := price
	o.messages = append(o.messages, newChatMessage(bakerID, RoleBaker, message, "", &quotedPrice, true, now))
	o.touch(now)

	return q, nil
}

// RevokeQuote deactivates the baker's quote and appends a withdrawal chat
// message. Idempotent: revoking an already-revoked or missing quote changes
// nothing and reports false. The quote record is preserved for history.
func (o *Order) RevokeQuote(bakerID kernel.UUID, now time.Time) bool {
	q, ok := o.quotes[bakerID]
	if !ok || !q.deactivate() {
		return false
	}

	o.messages = append(o.messages, newChatMessage(bakerID, RoleBaker, withdrawnMessageText, "", nil, false, now))
	o.touch(now)
	return true
}

// AssignBaker binds the baker to the order: status becomes baker-assigned
// and assignedAt is set to now. The operation is deliberately unguarded —
// assigning an already-assigned order re-assigns and restarts the grace
// window, matching the reference behavior. Competing quotes stay active but
// become non-actionable.
//
// When the baker has an active quote its price is copied onto the order as
// the accepted price.
func (o *Order) AssignBaker(bakerID kernel.UUID, now time.Time) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}

	o.bakerID = &bakerID
	o.status = BakerAssigned
	assignedAt := now
	o.assignedAt = &assignedAt

	if q := o.BakerQuote(bakerID); q != nil {
		price := q.price
		o.price = &price
	}

	o.touch(now)
	return nil
}

// CanCancel is the buyer cancellation eligibility predicate, a pure function
// of the order and the evaluation instant.
//
// Buyers only; bakers always get false (they decline instead). A posted
// order is always cancellable by its buyer. An assigned order is cancellable
// only while both hold: the expected delivery date is more than 3 days away
// and the baker was assigned less than 24 hours ago. Every other status is
// final from the buyer's perspective.
func (o *Order) CanCancel(userID kernel.UUID, role Role, now time.Time) bool {
	if role != RoleBuyer || !userID.IsEqual(o.buyerID) {
		return false
	}

	switch o.status {
	case Posted:
		return true
	case BakerAssigned:
		if o.assignedAt == nil {
			return false
		}
		return o.expectedDeliveryDate.Sub(now) > CancellationLeadTime &&
			now.Sub(*o.assignedAt) < AssignmentGraceWindow
	default:
		return false
	}
}

// CanDecline is the baker decline eligibility predicate. True only while the
// order is baker-assigned to this baker and less than 24 hours have elapsed
// since assignment. Unlike buyer cancellation there is no delivery lead-time
// condition; the asymmetry is intentional.
func (o *Order) CanDecline(bakerID kernel.UUID, now time.Time) bool {
	return o.status == BakerAssigned &&
		o.bakerID != nil &&
		o.bakerID.IsEqual(bakerID) &&
		o.assignedAt != nil &&
		now.Sub(*o.assignedAt) < AssignmentGraceWindow
}

// Cancel moves the order to cancelled when CanCancel permits it. Reports
// whether the order changed; a false return is the failure signal, not an
// error.
func (o *Order) Cancel(buyerID kernel.UUID, now time.Time) bool {
	if !o.CanCancel(buyerID, RoleBuyer, now) {
		return false
	}

	o.status = Cancelled
	o.touch(now)
	return true
}

// Decline unwinds an assignment within the grace window: status reverts to
// posted and bakerID and assignedAt are cleared, re-opening bidding.
// Existing quotes remain in history. Reports whether the order changed.
func (o *Order) Decline(bakerID kernel.UUID, now time.Time) bool {
	if !o.CanDecline(bakerID, now) {
		return false
	}

	o.status = Posted
	o.bakerID = nil
	o.assignedAt = nil
	o.touch(now)
	return true
}

// SetStatus writes the status unconditionally. This is the escape hatch for
// operator- and baker-driven fulfillment progression (in-progress,
// out-for-delivery, delivered); it performs no transition check. A non-empty
// otpCode is attached for delivery confirmation.
func (o *Order) SetStatus(status Status, otpCode string, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	if otpCode != "" {
		o.otpCode = otpCode
	}
	o.touch(now)
	return nil
}

// AddMessage appends a chat message to the order's conversation log.
// Content validation beyond sender identity is the caller's concern.
func (o *Order) AddMessage(senderID kernel.UUID, senderType Role, text, image string, price *float64, isQuote bool, now time.Time) (*ChatMessage, error) {
	if err := senderID.Validate(); err != nil {
		return nil, err
	}
	if err := senderType.Validate(); err != nil {
		return nil, err
	}

	m := newChatMessage(senderID, senderType, text, image, price, isQuote, now)
	o.messages = append(o.messages, m)
	o.touch(now)
	return m, nil
}

func (o *Order) storeQuote(q *Quote) {
	if _, exists := o.quotes[q.bakerID]; !exists {
		o.quoteOrder = append(o.quoteOrder, q.bakerID)
	}
	o.quotes[q.bakerID] = q
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

// String implements fmt.Stringer for log lines.
func (o *Order) String() string {
	return fmt.Sprintf("order %s [%s]", o.id, o.status)
}
