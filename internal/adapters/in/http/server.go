// Package http exposes the marketplace over a REST API. Handlers translate
// requests into commands and queries; lifecycle rules live in the domain.
package http

import (
	"errors"
	"net/http"

	"crumbsy/internal/core/application/usecases/commands"
	"crumbsy/internal/core/application/usecases/queries"
	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	sendQuoteHandler           commands.SendQuoteCommandHandler
	revokeQuoteHandler         commands.RevokeQuoteCommandHandler
	assignBakerHandler         commands.AssignBakerCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	declineOrderHandler        commands.DeclineOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	addMessageHandler          commands.AddMessageCommandHandler

	getPostedOrdersHandler queries.GetPostedOrdersQueryHandler
	getBuyerOrdersHandler  queries.GetBuyerOrdersQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	sendQuoteHandler commands.SendQuoteCommandHandler,
	revokeQuoteHandler commands.RevokeQuoteCommandHandler,
	assignBakerHandler commands.AssignBakerCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	declineOrderHandler commands.DeclineOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	addMessageHandler commands.AddMessageCommandHandler,
	getPostedOrdersHandler queries.GetPostedOrdersQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		sendQuoteHandler:         sendQuoteHandler,
		revokeQuoteHandler:       revokeQuoteHandler,
		assignBakerHandler:       assignBakerHandler,
		cancelOrderHandler:       cancelOrderHandler,
		declineOrderHandler:      declineOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		addMessageHandler:        addMessageHandler,
		getPostedOrdersHandler:   getPostedOrdersHandler,
		getBuyerOrdersHandler:    getBuyerOrdersHandler,
		validate:                 validator.New(),
	}
}

// RegisterRoutes wires the API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/posted", s.GetPostedOrders)
	api.GET("/buyers/:buyerID/orders", s.GetBuyerOrders)

	api.POST("/orders/:orderID/quotes", s.SubmitQuote)
	api.DELETE("/orders/:orderID/quotes/:bakerID", s.RevokeQuote)
	api.POST("/orders/:orderID/assign", s.AssignBaker)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/decline", s.DeclineOrder)
	api.PUT("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/messages", s.AddMessage)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		buyerID,
		designFromRequest(req.CakeDesign),
		req.DeliveryZipCode,
		req.ExpectedDeliveryDate,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return serverError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetPostedOrders handles GET /api/v1/orders/posted. The optional zip query
// parameter annotates rows with estimated distance.
func (s *Server) GetPostedOrders(ctx echo.Context) error {
	query := queries.NewGetPostedOrdersQuery(ctx.QueryParam("zip"))

	orders, err := s.getPostedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return serverError(ctx, err)
	}

	response := make([]PostedOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = PostedOrderResponse{
			ID:                   o.ID.String(),
			BuyerID:              o.BuyerID.String(),
			CakeName:             o.CakeName,
			DeliveryZipCode:      o.DeliveryZipCode,
			ExpectedDeliveryDate: o.ExpectedDeliveryDate,
			ActiveQuoteCount:     o.ActiveQuoteCount,
			DistanceMiles:        o.DistanceMiles,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBuyerOrders handles GET /api/v1/buyers/:buyerID/orders.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	buyerID, err := kernel.UUIDFromString(ctx.Param("buyerID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return serverError(ctx, err)
	}

	response := make([]BuyerOrderResponse, len(orders))
	for i, o := range orders {
		row := BuyerOrderResponse{
			ID:                   o.ID.String(),
			Status:               o.Status,
			CakeName:             o.CakeName,
			DeliveryZipCode:      o.DeliveryZipCode,
			ExpectedDeliveryDate: o.ExpectedDeliveryDate,
			Price:                o.Price,
			ActiveQuoteCount:     o.ActiveQuoteCount,
			UpdatedAt:            o.UpdatedAt,
		}
		if o.BakerID != nil {
			baker := o.BakerID.String()
			row.BakerID = &baker
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitQuote handles POST /api/v1/orders/:orderID/quotes.
func (s *Server) SubmitQuote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SubmitQuoteRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	bakerID, err := kernel.UUIDFromString(req.BakerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSendQuoteCommand(orderID, bakerID, req.Price, req.ModificationRequests, req.Message)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.sendQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevokeQuote handles DELETE /api/v1/orders/:orderID/quotes/:bakerID.
// Revocation is idempotent; a missing or already-revoked quote still returns
// 204.
func (s *Server) RevokeQuote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	bakerID, err := kernel.UUIDFromString(ctx.Param("bakerID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRevokeQuoteCommand(orderID, bakerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.revokeQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignBaker handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignBaker(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AssignBakerRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	bakerID, err := kernel.UUIDFromString(req.BakerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignBakerCommand(orderID, bakerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignBakerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel. Outside the
// cancellation window the call succeeds without changing the order; clients
// detect the unchanged status on the next read.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CancelOrderRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, buyerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineOrder handles POST /api/v1/orders/:orderID/decline.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req DeclineOrderRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	bakerID, err := kernel.UUIDFromString(req.BakerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, bakerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.declineOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.OtpCode)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddMessage handles POST /api/v1/orders/:orderID/messages.
func (s *Server) AddMessage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddMessageRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	senderType, err := order.RoleFromString(req.SenderType)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddMessageCommand(orderID, senderID, senderType, req.Text, req.Image)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.addMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bind decodes and validates a request body.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

func designFromRequest(req CakeDesignRequest) order.CakeDesign {
	layers := make([]order.CakeLayer, 0, len(req.Layers))
	for _, l := range req.Layers {
		layers = append(layers, order.CakeLayer(l))
	}

	return order.CakeDesign{
		ID:          req.ID,
		Name:        req.Name,
		Shape:       req.Shape,
		Layers:      layers,
		Buttercream: order.Buttercream(req.Buttercream),
		Toppings:    req.Toppings,
		TopText:     req.TopText,
	}
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func domainError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	return serverError(ctx, err)
}

func serverError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "internal error: " + err.Error(),
	})
}
