package http

import "time"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CakeDesignRequest is the design snapshot submitted with a new order.
type CakeDesignRequest struct {
	ID          string             `json:"id"`
	Name        string             `json:"name" validate:"required"`
	Shape       string             `json:"shape"`
	Layers      []CakeLayerRequest `json:"layers" validate:"min=1,dive"`
	Buttercream ButtercreamRequest `json:"buttercream"`
	Toppings    []string           `json:"toppings"`
	TopText     string             `json:"top_text"`
}

// CakeLayerRequest is one tier of the submitted design.
type CakeLayerRequest struct {
	Flavor        string `json:"flavor" validate:"required"`
	Color         string `json:"color"`
	TopDesign     string `json:"top_design"`
	Frosting      string `json:"frosting"`
	FrostingColor string `json:"frosting_color"`
}

// ButtercreamRequest is the outer coating of the submitted design.
type ButtercreamRequest struct {
	Flavor string `json:"flavor"`
	Color  string `json:"color"`
}

// CreateOrderRequest posts a new cake order.
type CreateOrderRequest struct {
	BuyerID              string            `json:"buyer_id" validate:"required,uuid"`
	CakeDesign           CakeDesignRequest `json:"cake_design" validate:"required"`
	DeliveryZipCode      string            `json:"delivery_zip_code" validate:"required"`
	ExpectedDeliveryDate time.Time         `json:"expected_delivery_date" validate:"required"`
}

// CreateOrderResponse returns the identifier minted for a new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// SubmitQuoteRequest is a baker's offer on a posted order.
type SubmitQuoteRequest struct {
	BakerID              string  `json:"baker_id" validate:"required,uuid"`
	Price                float64 `json:"price" validate:"required,gt=0"`
	ModificationRequests string  `json:"modification_requests"`
	Message              string  `json:"message" validate:"required"`
}

// AssignBakerRequest accepts a baker for an order.
type AssignBakerRequest struct {
	BakerID string `json:"baker_id" validate:"required,uuid"`
}

// CancelOrderRequest cancels an order on the buyer's behalf.
type CancelOrderRequest struct {
	BuyerID string `json:"buyer_id" validate:"required,uuid"`
}

// DeclineOrderRequest backs the assigned baker out of an order.
type DeclineOrderRequest struct {
	BakerID string `json:"baker_id" validate:"required,uuid"`
}

// UpdateOrderStatusRequest advances fulfillment.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	OtpCode string `json:"otp_code"`
}

// AddMessageRequest appends a chat message to an order.
type AddMessageRequest struct {
	SenderID   string `json:"sender_id" validate:"required,uuid"`
	SenderType string `json:"sender_type" validate:"required,oneof=buyer baker"`
	Text       string `json:"text"`
	Image      string `json:"image"`
}

// PostedOrderResponse is one row of the open order board.
type PostedOrderResponse struct {
	ID                   string    `json:"id"`
	BuyerID              string    `json:"buyer_id"`
	CakeName             string    `json:"cake_name"`
	DeliveryZipCode      string    `json:"delivery_zip_code"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
	ActiveQuoteCount     int       `json:"active_quote_count"`
	DistanceMiles        *int      `json:"distance_miles,omitempty"`
}

// BuyerOrderResponse is one row of a buyer's order history.
type BuyerOrderResponse struct {
	ID                   string    `json:"id"`
	Status               string    `json:"status"`
	CakeName             string    `json:"cake_name"`
	DeliveryZipCode      string    `json:"delivery_zip_code"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
	Price                *float64  `json:"price,omitempty"`
	BakerID              *string   `json:"baker_id,omitempty"`
	ActiveQuoteCount     int       `json:"active_quote_count"`
	UpdatedAt            time.Time `json:"updated_at"`
}
