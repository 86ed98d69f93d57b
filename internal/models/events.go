package models

import "time"

// Event types emitted by the storefront
const (
	EventTypeOrderPlaced    = "ORDER_PLACED"
	EventTypeOrderShipped   = "ORDER_SHIPPED"
	EventTypeOrderDelivered = "ORDER_DELIVERED"
)

// BaseEvent contains common fields for all storefront events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent is published by the checkout flow when an order is placed.
// The ingestion worker persists it into the admin store.
type OrderPlacedEvent struct {
	BaseEvent
	OrderID           string          `json:"order_id"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	CustomerPhone     string          `json:"customer_phone"`
	TotalAmount       float64         `json:"total_amount"`
	PaymentStatus     string          `json:"payment_status"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	CreatedAt         time.Time       `json:"created_at"`
	Items             []OrderItemData `json:"items"`
}

// OrderShippedEvent is published when the warehouse ships an order
type OrderShippedEvent struct {
	BaseEvent
	OrderID string `json:"order_id"`
}

// OrderDeliveredEvent is published when the carrier confirms delivery
type OrderDeliveredEvent struct {
	BaseEvent
	OrderID string `json:"order_id"`
}

// OrderItemData represents item data in events
type OrderItemData struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
