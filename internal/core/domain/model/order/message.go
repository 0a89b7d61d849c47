package order

import (
	"time"

	"crumbsy/internal/core/domain/model/kernel"
)

// withdrawnMessageText is the chat line appended when a baker revokes a quote.
const withdrawnMessageText = "Quote has been withdrawn."

// ChatMessage is one entry in an order's append-only conversation log.
// Messages are immutable once created. A message may carry a price together
// with the isQuote flag; that combination is a presentation hint marking the
// message as a formal quote, not a separate quote record.
type ChatMessage struct {
	id         kernel.UUID
	senderID   kernel.UUID
	senderType Role
	text       string
	image      string
	price      *float64
	isQuote    bool
	timestamp  time.Time
}

func newChatMessage(senderID kernel.UUID, senderType Role, text, image string, price *float64, isQuote bool, now time.Time) *ChatMessage {
	return &ChatMessage{
		id:         kernel.NewUUID(),
		senderID:   senderID,
		senderType: senderType,
		text:       text,
		image:      image,
		price:      price,
		isQuote:    isQuote,
		timestamp:  now,
	}
}

// RestoreChatMessage reconstructs a message from persistence. Intended for
// repository implementations; application code goes through Order.AddMessage.
func RestoreChatMessage(
	id kernel.UUID,
	senderID kernel.UUID,
	senderType Role,
	text string,
	image string,
	price *float64,
	isQuote bool,
	timestamp time.Time,
) (*ChatMessage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := senderID.Validate(); err != nil {
		return nil, err
	}
	if err := senderType.Validate(); err != nil {
		return nil, err
	}

	return &ChatMessage{
		id:         id,
		senderID:   senderID,
		senderType: senderType,
		text:       text,
		image:      image,
		price:      price,
		isQuote:    isQuote,
		timestamp:  timestamp,
	}, nil
}

// ID returns the message's unique identifier.
func (m *ChatMessage) ID() kernel.UUID {
	return m.id
}

// SenderID returns the buyer or baker who authored the message.
func (m *ChatMessage) SenderID() kernel.UUID {
	return m.senderID
}

// SenderType reports which side of the marketplace the sender is on.
func (m *ChatMessage) SenderType() Role {
	return m.senderType
}

// Text returns the message body.
func (m *ChatMessage) Text() string {
	return m.text
}

// Image returns an attached image reference, empty when none.
func (m *ChatMessage) Image() string {
	return m.image
}

// Price returns the price carried by the message, nil when none.
func (m *ChatMessage) Price() *float64 {
	return m.price
}

// IsQuote reports whether the message renders as a formal quote.
func (m *ChatMessage) IsQuote() bool {
	return m.isQuote
}

// Timestamp returns when the message was appended.
func (m *ChatMessage) Timestamp() time.Time {
	return m.timestamp
}
