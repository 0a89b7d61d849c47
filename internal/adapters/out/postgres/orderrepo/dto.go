// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans three tables: the order row
// itself plus its quotes and chat messages, which are loaded and saved
// together with the root.
package orderrepo

import (
	"time"

	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The cake design snapshot is stored as a JSON document; cake_name is
// denormalized out of it so the board queries never parse JSON.
type OrderDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID uuid.UUID  `gorm:"type:uuid;index"`
	BakerID *uuid.UUID `gorm:"type:uuid;index"`

	CakeName   string
	CakeDesign CakeDesignDTO `gorm:"serializer:json;type:jsonb"`

	DeliveryZipCode      string
	ExpectedDeliveryDate time.Time

	Status  int `gorm:"index"`
	Price   *float64
	OtpCode string

	// Domain timestamps are authoritative; GORM's automatic tracking is off.
	CreatedAt  time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime:false"`
	AssignedAt *time.Time

	Quotes   []QuoteDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Messages []MessageDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CakeDesignDTO is the JSON shape of the persisted design snapshot.
type CakeDesignDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Shape       string          `json:"shape"`
	Layers      []CakeLayerDTO  `json:"layers"`
	Buttercream ButtercreamDTO  `json:"buttercream"`
	Toppings    []string        `json:"toppings"`
	TopText     string          `json:"top_text"`
}

// CakeLayerDTO is one tier of the persisted design snapshot.
type CakeLayerDTO struct {
	Flavor        string `json:"flavor"`
	Color         string `json:"color"`
	TopDesign     string `json:"top_design"`
	Frosting      string `json:"frosting"`
	FrostingColor string `json:"frosting_color"`
}

// ButtercreamDTO is the outer coating of the persisted design snapshot.
type ButtercreamDTO struct {
	Flavor string `json:"flavor"`
	Color  string `json:"color"`
}

// QuoteDTO represents one baker's quote row. At most one row per
// (order, baker) pair is meaningful; resubmission updates the row in place.
type QuoteDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;index"`
	BakerID              uuid.UUID `gorm:"type:uuid;index"`
	Price                float64
	ModificationRequests string
	Message              string
	Timestamp            time.Time
	IsActive             bool
}

// TableName specifies the database table name for quote rows.
func (QuoteDTO) TableName() string {
	return "order_quotes"
}

// MessageDTO represents one chat message row. Messages are append-only;
// existing rows are never updated.
type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	SenderID   uuid.UUID `gorm:"type:uuid"`
	SenderType string
	Text       string
	Image      string
	Price      *float64
	IsQuote    bool
	Timestamp  time.Time
}

// TableName specifies the database table name for message rows.
func (MessageDTO) TableName() string {
	return "order_messages"
}

// fromDomain converts an order domain aggregate to its database
// representation, children included.
func fromDomain(aggregate *order.Order) OrderDTO {
	var bakerID *uuid.UUID
	if id := aggregate.Baker(); id != nil {
		raw := id.Bytes()
		bakerID = &raw
	}

	design := aggregate.CakeDesign()

	dto := OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		BuyerID:              aggregate.BuyerID().Bytes(),
		BakerID:              bakerID,
		CakeName:             design.Name,
		CakeDesign:           designFromDomain(design),
		DeliveryZipCode:      aggregate.DeliveryZipCode(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		Status:               int(aggregate.Status()),
		Price:                aggregate.Price(),
		OtpCode:              aggregate.OTPCode(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		AssignedAt:           aggregate.AssignedAt(),
	}

	for _, q := range aggregate.Quotes() {
		dto.Quotes = append(dto.Quotes, QuoteDTO{
			ID:                   q.ID().Bytes(),
			OrderID:              dto.ID,
			BakerID:              q.BakerID().Bytes(),
			Price:                q.Price(),
			ModificationRequests: q.ModificationRequests(),
			Message:              q.Message(),
			Timestamp:            q.Timestamp(),
			IsActive:             q.IsActive(),
		})
	}

	for _, m := range aggregate.Messages() {
		dto.Messages = append(dto.Messages, MessageDTO{
			ID:         m.ID().Bytes(),
			OrderID:    dto.ID,
			SenderID:   m.SenderID().Bytes(),
			SenderType: m.SenderType().String(),
			Text:       m.Text(),
			Image:      m.Image(),
			Price:      m.Price(),
			IsQuote:    m.IsQuote(),
			Timestamp:  m.Timestamp(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, rebuilding quotes and messages first.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var bakerID *kernel.UUID
	if dto.BakerID != nil {
		bID, bakerErr := kernel.UUIDFromBytes((*dto.BakerID)[:])
		if bakerErr != nil {
			return nil, bakerErr
		}
		bakerID = &bID
	}

	quotes := make([]*order.Quote, 0, len(dto.Quotes))
	for _, q := range dto.Quotes {
		restored, quoteErr := quoteToDomain(q)
		if quoteErr != nil {
			return nil, quoteErr
		}
		quotes = append(quotes, restored)
	}

	messages := make([]*order.ChatMessage, 0, len(dto.Messages))
	for _, m := range dto.Messages {
		restored, msgErr := messageToDomain(m)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, restored)
	}

	return order.RestoreOrder(
		id,
		buyerID,
		bakerID,
		designToDomain(dto.CakeDesign),
		dto.DeliveryZipCode,
		dto.ExpectedDeliveryDate,
		order.Status(dto.Status),
		dto.Price,
		dto.OtpCode,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.AssignedAt,
		quotes,
		messages,
	)
}

func quoteToDomain(dto QuoteDTO) (*order.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bakerID, err := kernel.UUIDFromBytes(dto.BakerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreQuote(
		id,
		bakerID,
		dto.Price,
		dto.ModificationRequests,
		dto.Message,
		dto.Timestamp,
		dto.IsActive,
	)
}

func messageToDomain(dto MessageDTO) (*order.ChatMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	senderType, err := order.RoleFromString(dto.SenderType)
	if err != nil {
		return nil, err
	}

	return order.RestoreChatMessage(
		id,
		senderID,
		senderType,
		dto.Text,
		dto.Image,
		dto.Price,
		dto.IsQuote,
		dto.Timestamp,
	)
}

func designFromDomain(d order.CakeDesign) CakeDesignDTO {
	layers := make([]CakeLayerDTO, 0, len(d.Layers))
	for _, l := range d.Layers {
		layers = append(layers, CakeLayerDTO(l))
	}

	return CakeDesignDTO{
		ID:          d.ID,
		Name:        d.Name,
		Shape:       d.Shape,
		Layers:      layers,
		Buttercream: ButtercreamDTO(d.Buttercream),
		Toppings:    d.Toppings,
		TopText:     d.TopText,
	}
}

func designToDomain(d CakeDesignDTO) order.CakeDesign {
	layers := make([]order.CakeLayer, 0, len(d.Layers))
	for _, l := range d.Layers {
		layers = append(layers, order.CakeLayer(l))
	}

	return order.CakeDesign{
		ID:          d.ID,
		Name:        d.Name,
		Shape:       d.Shape,
		Layers:      layers,
		Buttercream: order.Buttercream(d.Buttercream),
		Toppings:    d.Toppings,
		TopText:     d.TopText,
	}
}
