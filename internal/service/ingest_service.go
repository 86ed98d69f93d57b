package service

import (
	"context"
	"fmt"

	"admin-dashboard/internal/models"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngestService persists storefront order events into the admin store. This
// is the only write path for orders; admin code reads them but never mutates
// payment data.
type IngestService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(store *store.Store) *IngestService {
	return &IngestService{
		store:  store,
		logger: util.NamedLogger("ingest"),
	}
}

// HandleOrderPlaced inserts a placed order and its items
func (is *IngestService) HandleOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {
	ctx, span := util.StartSpan(ctx, "IngestService.HandleOrderPlaced")
	defer span.End()

	eventID := is.eventID(event.BaseEvent)

	processed, err := is.store.IsEventProcessed(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to check event processed: %w", err)
	}
	if processed {
		is.logger.Info("Event already processed", zap.String("event_id", eventID))
		return nil
	}

	order := &models.Order{
		ID:                event.OrderID,
		CustomerName:      event.CustomerName,
		CustomerEmail:     event.CustomerEmail,
		CustomerPhone:     event.CustomerPhone,
		TotalAmount:       event.TotalAmount,
		PaymentStatus:     event.PaymentStatus,
		FulfillmentStatus: event.FulfillmentStatus,
		CreatedAt:         event.CreatedAt,
	}
	if order.FulfillmentStatus == "" {
		order.FulfillmentStatus = models.FulfillmentStatusCreated
	}
	for _, item := range event.Items {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   event.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := is.store.InsertOrder(ctx, order); err != nil {
		util.OrdersIngestFailedTotal.WithLabelValues("db_error").Inc()
		return fmt.Errorf("failed to ingest order: %w", err)
	}

	util.OrdersIngestedTotal.Inc()

	if err := is.store.MarkEventProcessed(ctx, eventID, event.EventType); err != nil {
		is.logger.Error("Failed to mark event processed", zap.Error(err))
	}

	is.logger.Info("Order ingested",
		zap.String("order_id", event.OrderID),
		zap.Float64("total_amount", event.TotalAmount))
	return nil
}

// HandleOrderShipped updates fulfillment status to shipped
func (is *IngestService) HandleOrderShipped(ctx context.Context, event *models.OrderShippedEvent) error {
	ctx, span := util.StartSpan(ctx, "IngestService.HandleOrderShipped")
	defer span.End()

	return is.updateFulfillment(ctx, is.eventID(event.BaseEvent), event.EventType,
		event.OrderID, models.FulfillmentStatusShipped)
}

// HandleOrderDelivered updates fulfillment status to delivered
func (is *IngestService) HandleOrderDelivered(ctx context.Context, event *models.OrderDeliveredEvent) error {
	ctx, span := util.StartSpan(ctx, "IngestService.HandleOrderDelivered")
	defer span.End()

	return is.updateFulfillment(ctx, is.eventID(event.BaseEvent), event.EventType,
		event.OrderID, models.FulfillmentStatusDelivered)
}

func (is *IngestService) updateFulfillment(ctx context.Context, eventID, eventType, orderID, status string) error {
	processed, err := is.store.IsEventProcessed(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to check event processed: %w", err)
	}
	if processed {
		is.logger.Info("Event already processed", zap.String("event_id", eventID))
		return nil
	}

	if err := is.store.UpdateFulfillmentStatus(ctx, orderID, status); err != nil {
		util.OrdersIngestFailedTotal.WithLabelValues("db_error").Inc()
		return fmt.Errorf("failed to update fulfillment status: %w", err)
	}

	if err := is.store.MarkEventProcessed(ctx, eventID, eventType); err != nil {
		is.logger.Error("Failed to mark event processed", zap.Error(err))
	}

	is.logger.Info("Fulfillment updated",
		zap.String("order_id", orderID),
		zap.String("status", status))
	return nil
}

// eventID returns the event's id, minting one for legacy storefront events
// published without ids.
func (is *IngestService) eventID(base models.BaseEvent) string {
	if base.EventID != "" {
		return base.EventID
	}
	return uuid.New().String()
}
