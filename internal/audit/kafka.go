package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"blocktrust/internal/platform/config"
)

// KafkaPublisher fans audit events out to per-category topics
// (<prefix>.compliance, <prefix>.security, <prefix>.operations). Records are
// keyed by user id so one user's trail stays ordered within a partition.
type KafkaPublisher struct {
	client      *kgo.Client
	topicPrefix string
	logger      *slog.Logger
}

// NewKafkaPublisher connects to the brokers. Returns nil if no brokers are
// configured (audit then goes to the memory publisher).
func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.RecordRetries(5),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &KafkaPublisher{
		client:      client,
		topicPrefix: cfg.TopicPrefix,
		logger:      logger,
	}, nil
}

func (p *KafkaPublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.Category == "" {
		event.Category = CategoryOf(event.Action)
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: fmt.Sprintf("%s.%s", p.topicPrefix, event.Category),
		Key:   []byte(event.UserID.String()),
		Value: value,
	}

	// Async produce: audit must never block or fail the signing path. Delivery
	// failures are logged for out-of-band recovery.
	p.client.Produce(ctx, record, func(r *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("audit event delivery failed",
				"topic", r.Topic,
				"action", string(event.Action),
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes pending records and releases the client.
func (p *KafkaPublisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return fmt.Errorf("flush audit events: %w", err)
	}
	p.client.Close()
	return nil
}
