package http

import "github.com/google/uuid"

// Error is the JSON error body returned by every failing endpoint. Code is a
// stable machine-readable name (InvalidQuantity, EmptyCart, QueueEmpty,
// HistoryEmpty, NotFound, Internal); Message is for humans.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AddCartItemRequest is the body of POST /api/v1/cart/items.
type AddCartItemRequest struct {
	Vendor   string `json:"vendor"`
	Category string `json:"category"`
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// MenuItem represents one priced catalog item.
type MenuItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// BillLine represents one cart line in the bill view.
type BillLine struct {
	ItemName  string `json:"itemName"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// Bill is the response of GET /api/v1/cart/bill.
type Bill struct {
	Lines    []BillLine `json:"lines"`
	Subtotal string     `json:"subtotal"`
	Tax      string     `json:"tax"`
	Total    string     `json:"total"`
}

// PlacedOrder is the response of POST /api/v1/orders.
type PlacedOrder struct {
	ID       uuid.UUID `json:"id"`
	Subtotal string    `json:"subtotal"`
	Tax      string    `json:"tax"`
	Total    string    `json:"total"`
}

// ProcessedOrder is the response of POST /api/v1/orders/process.
type ProcessedOrder struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// QueuedOrder represents one order waiting in the queue.
type QueuedOrder struct {
	ID       uuid.UUID `json:"id"`
	Total    string    `json:"total"`
	PlacedAt string    `json:"placedAt"`
}

// ActiveDelivery represents one in-flight delivery.
type ActiveDelivery struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// HistoryEntry represents one delivered order.
type HistoryEntry struct {
	ID          uuid.UUID `json:"id"`
	Total       string    `json:"total"`
	DeliveredAt string    `json:"deliveredAt"`
}

// Revenue is the response of GET /api/v1/revenue.
type Revenue struct {
	Total string `json:"total"`
}
