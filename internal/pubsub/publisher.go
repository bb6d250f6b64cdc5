package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// ReadingCreatedEvent is published after a reading is persisted so the
// notification pipeline can tell the user their purchase is ready.
type ReadingCreatedEvent struct {
	ReadingID string `json:"reading_id"`
	UserID    string `json:"user_id"`
	ServiceID string `json:"service_id"`
	OrderID   string `json:"order_id"`
	Title     string `json:"title"`
}

// Publisher defines an interface for publishing reading events.
type Publisher interface {
	PublishReadingCreated(ctx context.Context, topic string, event ReadingCreatedEvent) (string, error)
}

// PubSubPublisher is an implementation of Publisher using Google Pub/Sub.
type PubSubPublisher struct {
	client *pubsub.Client
}

// NewPublisher creates a new PubSubPublisher for the given GCP project.
func NewPublisher(ctx context.Context, projectID string) (*PubSubPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Pub/Sub client: %w", err)
	}
	return &PubSubPublisher{client: client}, nil
}

// PublishReadingCreated sends the event to the given topic and returns
// the message ID.
func (p *PubSubPublisher) PublishReadingCreated(ctx context.Context, topic string, event ReadingCreatedEvent) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal reading event: %w", err)
	}
	t := p.client.Topic(topic)
	result := t.Publish(ctx, &pubsub.Message{Data: payload})
	id, err := result.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to publish message to topic %s: %w", topic, err)
	}
	return id, nil
}
