package store

import (
	"context"
	"database/sql"
	"fmt"

	"admin-dashboard/internal/models"

	"github.com/jmoiron/sqlx"
)

// OrderFilter narrows an order snapshot read. The store only supports an
// equality filter on payment status, created_at ordering, and a row limit;
// everything richer happens in the reporting reductions.
type OrderFilter struct {
	PaymentStatus string
	Limit         int
	Descending    bool
}

// GetOrders retrieves an order snapshot with line items attached
func (s *Store) GetOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, COALESCE(customer_phone, '') AS customer_phone,
		       total_amount, payment_status, fulfillment_status, created_at
		FROM orders`
	args := []interface{}{}

	if filter.PaymentStatus != "" {
		query += " WHERE payment_status = $1"
		args = append(args, filter.PaymentStatus)
	}

	if filter.Descending {
		query += " ORDER BY created_at DESC"
	} else {
		query += " ORDER BY created_at ASC"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var orders []models.Order
	if err := s.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, wrapReadErr("orders", err)
	}

	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByID retrieves a single order with items
func (s *Store) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, `
		SELECT id, customer_name, customer_email, COALESCE(customer_phone, '') AS customer_phone,
		       total_amount, payment_status, fulfillment_status, created_at
		FROM orders WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	if err != nil {
		return nil, wrapReadErr("orders", err)
	}

	orders := []models.Order{order}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachItems bulk-loads line items for the given orders
func (s *Store) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	query, args, err := sqlx.In("SELECT * FROM order_items WHERE order_id IN (?)", ids)
	if err != nil {
		return err
	}
	query = s.db.Rebind(query)

	var items []models.OrderItem
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return wrapReadErr("order_items", err)
	}

	byOrder := make(map[string][]models.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return nil
}

// InsertOrder persists a storefront order and its items in one transaction.
// Used only by the ingestion worker; the admin API never writes orders.
func (s *Store) InsertOrder(ctx context.Context, order *models.Order) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_email, customer_phone,
		                    total_amount, payment_status, fulfillment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		order.ID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.TotalAmount, order.PaymentStatus, order.FulfillmentStatus, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, size, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.ProductID, item.Name, item.Size, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// UpdateFulfillmentStatus updates an order's fulfillment status
func (s *Store) UpdateFulfillmentStatus(ctx context.Context, orderID, status string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE orders SET fulfillment_status = $1 WHERE id = $2",
		status, orderID)
	return err
}

// IsEventProcessed checks if an event has been processed
func (s *Store) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM processed_events WHERE event_id = $1)", eventID)
	return exists, err
}

// MarkEventProcessed marks an event as processed
func (s *Store) MarkEventProcessed(ctx context.Context, eventID, eventType string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO processed_events (event_id, event_type) VALUES ($1, $2) ON CONFLICT (event_id) DO NOTHING",
		eventID, eventType)
	return err
}
