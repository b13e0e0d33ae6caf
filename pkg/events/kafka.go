package events

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaOptions configure the Kafka publisher.
type KafkaOptions struct {
	// Brokers are the seed brokers, host:port.
	Brokers []string
	// Topic receives every catalog change.
	Topic string
	// ClientID identifies this service to the brokers.
	ClientID string
	// ProduceTimeout bounds a single synchronous produce.
	ProduceTimeout time.Duration
}

// Kafka publishes catalog changes synchronously to a single topic.
type Kafka struct {
	client  *kgo.Client
	timeout time.Duration
}

var _ Publisher = (*Kafka)(nil)

// NewKafka creates a producer for opts.Topic. The connection is established
// lazily by the client on first produce.
func NewKafka(opts KafkaOptions) (*Kafka, error) {
	if len(opts.Brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}
	if opts.Topic == "" {
		return nil, errors.New("no kafka topic configured")
	}

	kopts := []kgo.Opt{
		kgo.SeedBrokers(opts.Brokers...),
		kgo.DefaultProduceTopic(opts.Topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.AllowAutoTopicCreation(),
	}
	if opts.ClientID != "" {
		kopts = append(kopts, kgo.ClientID(opts.ClientID))
	}

	client, err := kgo.NewClient(kopts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create kafka client")
	}

	return &Kafka{client: client, timeout: opts.ProduceTimeout}, nil
}

// Publish blocks until the change is acknowledged by the brokers.
func (k *Kafka) Publish(ctx context.Context, change CatalogChanged) error {
	rec, err := change.Record()
	if err != nil {
		return err
	}

	if k.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.timeout)
		defer cancel()
	}

	if err := k.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return errors.Wrap(err, "could not produce catalog change")
	}

	return nil
}

// Close releases the underlying client.
func (k *Kafka) Close() {
	k.client.Close()
}
