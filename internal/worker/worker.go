package worker

import (
	"context"
	"log"

	"admin-dashboard/internal/broker"
	"admin-dashboard/internal/service"
)

// IngestWorker consumes storefront order events and feeds the ingest service
type IngestWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
}

// NewIngestWorker creates a new ingest worker
func NewIngestWorker(consumer *broker.Consumer, ingestService *service.IngestService) *IngestWorker {
	eventHandler := broker.NewEventHandler()

	eventHandler.OnOrderPlaced(ingestService.HandleOrderPlaced)
	eventHandler.OnOrderShipped(ingestService.HandleOrderShipped)
	eventHandler.OnOrderDelivered(ingestService.HandleOrderDelivered)

	return &IngestWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
	}
}

// Start starts the worker
func (w *IngestWorker) Start(ctx context.Context) error {
	log.Println("Starting ingest worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *IngestWorker) Stop() error {
	log.Println("Stopping ingest worker...")
	return w.consumer.Close()
}
