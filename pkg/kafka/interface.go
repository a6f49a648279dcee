package kafka

import "fmt"

// IProducer defines the interface for publishing messages to the configured
// topic. Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
}

// NewProducer creates a new sync Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}
	p, err := newProducerImpl(cfg)
	if err != nil {
		return nil, err
	}
	return p, nil
}
