package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"admin-dashboard/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventHandler routes storefront events to registered handlers
type EventHandler struct {
	onOrderPlaced    func(context.Context, *models.OrderPlacedEvent) error
	onOrderShipped   func(context.Context, *models.OrderShippedEvent) error
	onOrderDelivered func(context.Context, *models.OrderDeliveredEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnOrderPlaced registers a handler for OrderPlaced events
func (eh *EventHandler) OnOrderPlaced(handler func(context.Context, *models.OrderPlacedEvent) error) {
	eh.onOrderPlaced = handler
}

// OnOrderShipped registers a handler for OrderShipped events
func (eh *EventHandler) OnOrderShipped(handler func(context.Context, *models.OrderShippedEvent) error) {
	eh.onOrderShipped = handler
}

// OnOrderDelivered registers a handler for OrderDelivered events
func (eh *EventHandler) OnOrderDelivered(handler func(context.Context, *models.OrderDeliveredEvent) error) {
	eh.onOrderDelivered = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	log.Printf("Handling event: type=%s, id=%s", baseEvent.EventType, baseEvent.EventID)

	switch baseEvent.EventType {
	case models.EventTypeOrderPlaced:
		if eh.onOrderPlaced != nil {
			var event models.OrderPlacedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OrderPlaced event: %w", err)
			}
			return eh.onOrderPlaced(ctx, &event)
		}

	case models.EventTypeOrderShipped:
		if eh.onOrderShipped != nil {
			var event models.OrderShippedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OrderShipped event: %w", err)
			}
			return eh.onOrderShipped(ctx, &event)
		}

	case models.EventTypeOrderDelivered:
		if eh.onOrderDelivered != nil {
			var event models.OrderDeliveredEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OrderDelivered event: %w", err)
			}
			return eh.onOrderDelivered(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
