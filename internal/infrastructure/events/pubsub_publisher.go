package events

import (
	"context"
	"encoding/json"
	"fmt"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"cloud.google.com/go/pubsub"
	"github.com/rs/zerolog"
)

// PubSubPublisher sends domain events to a Google Pub/Sub topic as JSON messages.
// The event type and level travel as attributes so subscribers can filter on them.
type PubSubPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
	logger zerolog.Logger
}

var _ interfaces.IEventPublisher = (*PubSubPublisher)(nil)

func NewPubSubPublisher(ctx context.Context, projectID, topicID string, logger zerolog.Logger) (*PubSubPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("pubsub.NewClient: %w", err)
	}
	return &PubSubPublisher{
		client: client,
		topic:  client.Topic(topicID),
		logger: logger.With().Str("topic", topicID).Logger(),
	}, nil
}

func (p *PubSubPublisher) Publish(ctx context.Context, event entities.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	result := p.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"type":             event.Type,
			"level":            string(event.Level),
			"service_order_id": event.ServiceOrderID,
		},
	})
	id, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("pubsub publish %s: %w", event.Type, err)
	}
	p.logger.Debug().Str("message_id", id).Str("event_type", event.Type).Msg("event published")
	return nil
}

// Close flushes pending messages and releases the client.
func (p *PubSubPublisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
