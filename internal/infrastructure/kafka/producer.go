package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"

	"github.com/myapplevix/store-backend/internal/cfg"
	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
)

// eventMessage is the wire form of a lifecycle event.
type eventMessage struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer publishes lifecycle events. Delivery is best-effort by design:
// the write is batched and asynchronous, and failures only log through the
// completion callback. No operation ever waits on, or fails because of, Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Publish enqueues a lifecycle event keyed by product id, so events of one
// product stay ordered within a partition.
func (p *Producer) Publish(ctx context.Context, event *usecase.LifecycleEvent) error {
	value, err := json.Marshal(eventMessage{
		EventID:    event.EventID,
		Type:       event.Type,
		ProductID:  event.ProductID,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ProductID),
		Value: value,
	})
}

// EnsureTopic creates the topic if the broker does not have it yet.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

// Close flushes pending batches and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
