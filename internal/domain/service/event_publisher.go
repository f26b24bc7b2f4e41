package service

import (
	"context"
)

// OrderEvent is published on every order status transition so downstream
// consumers (fulfilment dashboards, email senders) can react asynchronously.
type OrderEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	OrderID        string `json:"order_id"`
	UserID         string `json:"user_id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	Note           string `json:"note,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order status transition for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
