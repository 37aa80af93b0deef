// Package http exposes the ordering engine over a REST API using echo.
// Handlers translate between HTTP and the application's commands and
// queries, mapping the domain error taxonomy to structured JSON errors.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	catalog ports.MenuCatalog

	// Command handlers
	addCartItemHandler      commands.AddCartItemCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	processNextOrderHandler commands.ProcessNextOrderCommandHandler

	// Query handlers
	getBillHandler             queries.GetBillQueryHandler
	getQueuedOrdersHandler     queries.GetQueuedOrdersQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getHistoryHandler          queries.GetHistoryQueryHandler
	getRevenueHandler          queries.GetRevenueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	catalog ports.MenuCatalog,
	addCartItemHandler commands.AddCartItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	processNextOrderHandler commands.ProcessNextOrderCommandHandler,
	getBillHandler queries.GetBillQueryHandler,
	getQueuedOrdersHandler queries.GetQueuedOrdersQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getHistoryHandler queries.GetHistoryQueryHandler,
	getRevenueHandler queries.GetRevenueQueryHandler,
) *Server {
	return &Server{
		catalog:                    catalog,
		addCartItemHandler:         addCartItemHandler,
		placeOrderHandler:          placeOrderHandler,
		processNextOrderHandler:    processNextOrderHandler,
		getBillHandler:             getBillHandler,
		getQueuedOrdersHandler:     getQueuedOrdersHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getHistoryHandler:          getHistoryHandler,
		getRevenueHandler:          getRevenueHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu/vendors", s.GetVendors)
	api.GET("/menu/vendors/:vendor/categories", s.GetCategories)
	api.GET("/menu/vendors/:vendor/categories/:category/items", s.GetItems)

	api.POST("/cart/items", s.AddCartItem)
	api.GET("/cart/bill", s.GetBill)

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/process", s.ProcessNextOrder)
	api.GET("/orders/queued", s.GetQueuedOrders)
	api.GET("/orders/active", s.GetActiveDeliveries)
	api.GET("/orders/history", s.GetHistory)

	api.GET("/revenue", s.GetRevenue)
}

// GetVendors handles GET /api/v1/menu/vendors - lists vendor names.
func (s *Server) GetVendors(ctx echo.Context) error {
	vendors, err := s.catalog.Vendors(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vendors)
}

// GetCategories handles GET /api/v1/menu/vendors/:vendor/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	categories, err := s.catalog.Categories(ctx.Request().Context(), ctx.Param("vendor"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}

// GetItems handles GET /api/v1/menu/vendors/:vendor/categories/:category/items.
func (s *Server) GetItems(ctx echo.Context) error {
	items, err := s.catalog.Items(ctx.Request().Context(), ctx.Param("vendor"), ctx.Param("category"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, MenuItem{
			Name:  item.Name(),
			Price: item.UnitPrice().String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items - adds a catalog item to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    "BadRequest",
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddCartItemCommand(
		request.Vendor, request.Category, request.ItemName, request.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBill handles GET /api/v1/cart/bill - returns the current cart's bill.
func (s *Server) GetBill(ctx echo.Context) error {
	bill, err := s.getBillHandler.Handle(ctx.Request().Context(), queries.NewGetBillQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBill(bill))
}

// PlaceOrder handles POST /api/v1/orders - converts the cart into a queued
// order. The bill is computed first so the response can echo the captured
// amounts alongside the generated order ID.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	bill, err := s.getBillHandler.Handle(ctx.Request().Context(), queries.NewGetBillQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlacedOrder{
		ID:       orderID.Bytes(),
		Subtotal: bill.Subtotal.String(),
		Tax:      bill.Tax.String(),
		Total:    bill.Total.String(),
	})
}

// ProcessNextOrder handles POST /api/v1/orders/process - dequeues the oldest
// order and starts its delivery.
func (s *Server) ProcessNextOrder(ctx echo.Context) error {
	orderID, err := s.processNextOrderHandler.Handle(
		ctx.Request().Context(), commands.NewProcessNextOrderCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProcessedOrder{
		ID:     orderID.Bytes(),
		Status: "Preparing",
	})
}

// GetQueuedOrders handles GET /api/v1/orders/queued.
func (s *Server) GetQueuedOrders(ctx echo.Context) error {
	orders, err := s.getQueuedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetQueuedOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]QueuedOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, QueuedOrder{
			ID:       o.ID.Bytes(),
			Total:    o.Total.String(),
			PlacedAt: o.PlacedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveDeliveries handles GET /api/v1/orders/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	deliveries, err := s.getActiveDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ActiveDelivery, 0, len(deliveries))
	for _, d := range deliveries {
		response = append(response, ActiveDelivery{
			ID:     d.ID.Bytes(),
			Status: d.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetHistory handles GET /api/v1/orders/history - delivered orders, most
// recent first.
func (s *Server) GetHistory(ctx echo.Context) error {
	history, err := s.getHistoryHandler.Handle(
		ctx.Request().Context(), queries.NewGetHistoryQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]HistoryEntry, 0, len(history))
	for _, entry := range history {
		response = append(response, HistoryEntry{
			ID:          entry.ID.Bytes(),
			Total:       entry.Total.String(),
			DeliveredAt: entry.DeliveredAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRevenue handles GET /api/v1/revenue - the cumulative revenue total.
func (s *Server) GetRevenue(ctx echo.Context) error {
	revenue, err := s.getRevenueHandler.Handle(
		ctx.Request().Context(), queries.NewGetRevenueQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Revenue{Total: revenue.Total.String()})
}

// writeError maps domain errors to structured JSON responses. Every error in
// the taxonomy keeps a stable code so clients can branch on it.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, cart.ErrQuantityIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    "InvalidQuantity",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrCartIsEmpty):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    "EmptyCart",
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrNoQueuedOrders):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    "QueueEmpty",
			Message: err.Error(),
		})
	case errors.Is(err, queries.ErrHistoryIsEmpty):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    "HistoryEmpty",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    "NotFound",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    "BadRequest",
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    "Internal",
			Message: "Internal server error",
		})
	}
}

func toBill(response queries.GetBillQueryResponse) Bill {
	lines := make([]BillLine, 0, len(response.Lines))
	for _, line := range response.Lines {
		lines = append(lines, BillLine{
			ItemName:  line.ItemName,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.String(),
		})
	}

	return Bill{
		Lines:    lines,
		Subtotal: response.Subtotal.String(),
		Tax:      response.Tax.String(),
		Total:    response.Total.String(),
	}
}
