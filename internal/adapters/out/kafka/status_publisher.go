// Package kafka publishes order status change notifications to a Kafka
// topic. Consumers (displays, downstream services) receive one message per
// transition; the publisher never blocks or fails the transition itself,
// callers log and continue on error.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// statusChangedEvent is the wire format of one status notification.
type statusChangedEvent struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// StatusPublisher implements OrderStatusPublisher on a kafka-go writer.
type StatusPublisher struct {
	writer *kafka.Writer
}

// NewStatusPublisher creates a publisher writing to the given topic on the
// given brokers. Messages are keyed by order ID so all transitions of one
// order land in the same partition, in order.
func NewStatusPublisher(brokers []string, topic string) *StatusPublisher {
	return &StatusPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// PublishStatusChanged announces that orderID moved to newStatus.
func (p *StatusPublisher) PublishStatusChanged(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) error {
	event := statusChangedEvent{
		OrderID:    orderID.String(),
		Status:     newStatus.String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID.String()),
		Value: payload,
	})
}

// Close releases the underlying writer's connections.
func (p *StatusPublisher) Close() error {
	return p.writer.Close()
}
