package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/IBM/sarama"

	"agrilink-fulfillment/internal/logx"
	"agrilink-fulfillment/internal/service/order"
)

// seam for tests
var newSyncProducer = sarama.NewSyncProducer

// Producer publishes order lifecycle events to a Kafka topic. A nil Producer
// is a valid no-op, so the service runs without a broker configured.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
}

// NewProducer creates a Kafka producer, or nil when brokers or topic are
// not configured.
func NewProducer(logger logx.Logger, brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
		logger:   logger,
	}, nil
}

// Publish sends one order event, keyed by order id so events of the same
// order stay ordered within a partition.
func (p *Producer) Publish(_ context.Context, e order.Event) error {
	if p == nil {
		return nil
	}

	b, err := json.Marshal(FromDomain(e))
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.OrderID),
		Value: sarama.ByteEncoder(b),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return err
	}

	p.logger.Debug("order event published",
		logx.String("order_id", e.OrderID),
		logx.String("status", e.Status),
		logx.Int("partition", int(partition)),
		logx.Int("offset", int(offset)),
	)
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
