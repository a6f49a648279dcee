package audit

import (
	"context"
	"encoding/json"
	"time"

	"cloud-srv/pkg/kafka"
	"cloud-srv/pkg/log"
)

// Event names published to the audit topic.
const (
	EventUserRegistered = "user.registered"
	EventFileUploaded   = "file.uploaded"
	EventFileDeleted    = "file.deleted"
	EventFileRenamed    = "file.renamed"
)

// Event is the audit record published to Kafka. Keyed by username so events
// for one user land on one partition in order.
type Event struct {
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	FileName   string    `json:"fileName,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// IPublisher publishes audit events. Publishing is best effort: failures are
// logged and never surfaced to the request path.
type IPublisher interface {
	Publish(ctx context.Context, event Event)
}

type publisherImpl struct {
	l        log.Logger
	producer kafka.IProducer
}

// New creates an audit publisher. A nil producer disables publishing, which
// keeps the services runnable without a Kafka cluster.
func New(l log.Logger, producer kafka.IProducer) IPublisher {
	return &publisherImpl{
		l:        l,
		producer: producer,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event Event) {
	if p.producer == nil {
		return
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.l.Errorf(ctx, "audit.Publish: failed to marshal event %s: %v", event.Name, err)
		return
	}

	if err := p.producer.Publish([]byte(event.Username), value); err != nil {
		p.l.Warnf(ctx, "audit.Publish: failed to publish event %s: %v", event.Name, err)
	}
}
