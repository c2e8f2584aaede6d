// Package kafka provides a Kafka-backed audit sink. Events are produced as
// JSON records keyed by requester UID so downstream consumers preserve
// per-requester ordering.
package kafka

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	derrors "labdesk/pkg/domain-errors"
	"labdesk/pkg/platform/audit"
)

var json = jsoniter.ConfigFastest

// Store produces audit events to a Kafka topic.
type Store struct {
	client *kgo.Client
	topic  string
}

// New connects to the given brokers and ensures the topic exists. The topic is
// created with a single partition when absent; existing topics are left alone.
func New(ctx context.Context, brokers []string, topic string) (*Store, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("create audit topic: %w", err)
	}
	for _, res := range resp {
		if res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
			client.Close()
			return nil, fmt.Errorf("create audit topic %s: %w", res.Topic, res.Err)
		}
	}

	return &Store{client: client, topic: topic}, nil
}

// Append produces one event record synchronously.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.RequesterUID),
		Value: payload,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// ListByRequester is not supported on the Kafka sink; reads happen through
// downstream consumers, not the producer.
func (s *Store) ListByRequester(context.Context, string) ([]audit.Event, error) {
	return nil, derrors.New(derrors.CodeBadRequest, "kafka audit sink is write-only")
}

// Close flushes buffered records and releases the client.
func (s *Store) Close() {
	s.client.Close()
}
