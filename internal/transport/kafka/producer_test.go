package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"agrilink-fulfillment/internal/service/order"
	testlog "agrilink-fulfillment/internal/testutil"
)

type fakeSyncProducer struct {
	sent []*sarama.ProducerMessage
	err  error
}

func (f *fakeSyncProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	f.sent = append(f.sent, msg)
	return 0, int64(len(f.sent)), nil
}

func (f *fakeSyncProducer) SendMessages(msgs []*sarama.ProducerMessage) error { return nil }
func (f *fakeSyncProducer) Close() error                                      { return nil }
func (f *fakeSyncProducer) TxnStatus() sarama.ProducerTxnStatusFlag           { return 0 }
func (f *fakeSyncProducer) IsTransactional() bool                             { return false }
func (f *fakeSyncProducer) BeginTxn() error                                   { return nil }
func (f *fakeSyncProducer) CommitTxn() error                                  { return nil }
func (f *fakeSyncProducer) AbortTxn() error                                   { return nil }
func (f *fakeSyncProducer) AddOffsetsToTxn(map[string][]*sarama.PartitionOffsetMetadata, string) error {
	return nil
}
func (f *fakeSyncProducer) AddMessageToTxn(*sarama.ConsumerMessage, string, *string) error {
	return nil
}

func TestNewProducer_SkipsWhenNoKafkaConfig(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	got, err := NewProducer(rec.Logger(), nil, "topic")
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewProducer(rec.Logger(), []string{"b:9092"}, "   ")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestNewProducer_ReturnsErrorWhenSaramaFails(t *testing.T) {
	t.Parallel()

	orig := newSyncProducer
	t.Cleanup(func() { newSyncProducer = orig })

	sentinel := errors.New("boom")
	newSyncProducer = func(_ []string, _ *sarama.Config) (sarama.SyncProducer, error) {
		return nil, sentinel
	}

	rec := testlog.New()
	got, err := NewProducer(rec.Logger(), []string{"b:9092"}, "topic")
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, got)
}

func TestPublish_KeyedByOrderID(t *testing.T) {
	t.Parallel()

	fake := &fakeSyncProducer{}
	rec := testlog.New()
	p := &Producer{producer: fake, topic: "orders.events", logger: rec.Logger()}

	ev := order.Event{
		OrderID:   "ORD-1",
		Status:    "pending",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), ev))
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	require.Equal(t, "orders.events", msg.Topic)

	key, _ := msg.Key.Encode()
	require.Equal(t, "ORD-1", string(key))

	raw, _ := msg.Value.Encode()
	var dto EventDTO
	require.NoError(t, json.Unmarshal(raw, &dto))
	require.Equal(t, FromDomain(ev), dto)
}

func TestPublish_PropagatesSendError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("broker down")
	fake := &fakeSyncProducer{err: sentinel}
	p := &Producer{producer: fake, topic: "orders.events", logger: testlog.New().Logger()}

	err := p.Publish(context.Background(), order.Event{OrderID: "ORD-1", Status: "pending"})
	require.ErrorIs(t, err, sentinel)
}

func TestPublish_NilProducerIsNoop(t *testing.T) {
	t.Parallel()

	var p *Producer
	require.NoError(t, p.Publish(context.Background(), order.Event{OrderID: "ORD-1"}))
	require.NoError(t, p.Close())
}
