// Package events publishes domain events (posts created, subscriptions
// requested, likes added) to NATS so other services can react to them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Subjects published by the API
const (
	SubjectPostCreated          = "parlor.post.created"
	SubjectPostDeleted          = "parlor.post.deleted"
	SubjectCommentCreated       = "parlor.comment.created"
	SubjectSubscriptionCreated  = "parlor.subscription.created"
	SubjectSubscriptionApproved = "parlor.subscription.approved"
	SubjectLikeAdded            = "parlor.like.added"
	SubjectRepostCreated        = "parlor.repost.created"
	SubjectUserRegistered       = "parlor.user.registered"
)

// Publisher sends a domain event. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Envelope is the wire format of every event
type Envelope struct {
	OccurredAt time.Time       `json:"occurredAt"`
	Subject    string          `json:"subject"`
	Payload    json.RawMessage `json:"payload"`
	ID         uuid.UUID       `json:"id"`
}

// NatsPublisher publishes events on a NATS connection
type NatsPublisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

// NewNatsPublisher wraps an established NATS connection
func NewNatsPublisher(nc *nats.Conn, logger *slog.Logger) *NatsPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NatsPublisher{nc: nc, logger: logger}
}

// Publish encodes payload into an Envelope and sends it on subject
func (p *NatsPublisher) Publish(ctx context.Context, subject string, payload any) error {
	msg, err := newMessage(subject, payload, time.Now().UTC())
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "publishing event", "subject", subject, "event_id", msg.Header.Get("Parlor-Event-Id"))

	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}

func newMessage(subject string, payload any, now time.Time) (*nats.Msg, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", subject, err)
	}

	env := Envelope{
		ID:         uuid.New(),
		Subject:    subject,
		OccurredAt: now,
		Payload:    body,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s envelope: %w", subject, err)
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  nats.Header{},
	}
	msg.Header.Set("Parlor-Event-Id", env.ID.String())
	msg.Header.Set("Content-Type", "application/json")
	return msg, nil
}

// NopPublisher drops every event. Used when NATS_URL is unset.
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// PublishBestEffort publishes and logs failures instead of returning them.
// A failed publish never fails the write that produced the event.
func PublishBestEffort(ctx context.Context, p Publisher, logger *slog.Logger, subject string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, subject, payload); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.WarnContext(ctx, "event publish failed", "subject", subject, "error", err)
	}
}
