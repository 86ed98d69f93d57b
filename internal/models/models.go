package models

import "time"

// Order represents a storefront order. Orders are written by the checkout
// flow (via the ingestion worker) and are read-only for the admin service.
type Order struct {
	ID                string    `db:"id" json:"id"`
	CustomerName      string    `db:"customer_name" json:"customer_name"`
	CustomerEmail     string    `db:"customer_email" json:"customer_email"`
	CustomerPhone     string    `db:"customer_phone" json:"customer_phone"`
	TotalAmount       float64   `db:"total_amount" json:"total_amount"`
	PaymentStatus     string    `db:"payment_status" json:"payment_status"`
	FulfillmentStatus string    `db:"fulfillment_status" json:"fulfillment_status"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`

	Items []OrderItem `db:"-" json:"items"`
}

// OrderItem represents a line item on an order. UnitPrice is the price at
// order time, not the current catalog price.
type OrderItem struct {
	ID        int64   `db:"id" json:"id"`
	OrderID   string  `db:"order_id" json:"order_id"`
	ProductID string  `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Size      string  `db:"size" json:"size"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
}

// Product represents a catalog product
type Product struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	Brand     string    `db:"brand" json:"brand"`
	Price     string    `db:"price" json:"price"`
	Stock     int       `db:"stock" json:"stock"`
	InStock   bool      `db:"in_stock" json:"in_stock"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserProfile represents a platform account visible to staff
type UserProfile struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Payment statuses
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// Fulfillment statuses
const (
	FulfillmentStatusCreated   = "created"
	FulfillmentStatusShipped   = "shipped"
	FulfillmentStatusDelivered = "delivered"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DashboardStats is the headline aggregate for the dashboard landing page.
// Recomputed from full snapshots on every request.
type DashboardStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalOrders   int     `json:"total_orders"`
	TotalProducts int     `json:"total_products"`
	TotalUsers    int     `json:"total_users"`
	RevenueGrowth float64 `json:"revenue_growth"`
	OrdersGrowth  float64 `json:"orders_growth"`
}

// CategoryShare is one slice of the category distribution donut
type CategoryShare struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// ChartPoint is one time bucket of the sales chart
type ChartPoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// ProductRank is one row of the top-products table. Revenue is numeric;
// currency formatting happens at the API boundary.
type ProductRank struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// ProcessedEvent for ingestion idempotency
type ProcessedEvent struct {
	EventID     string    `db:"event_id"`
	EventType   string    `db:"event_type"`
	ProcessedAt time.Time `db:"processed_at"`
}
