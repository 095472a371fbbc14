package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"
)

// HandlerFunc processes one decoded event
type HandlerFunc func(ctx context.Context, env Envelope) error

// Consumer fans NATS messages out to handlers registered per subject.
// Consumers sharing a queue name split the work between them.
type Consumer struct {
	nc       *nats.Conn
	logger   *slog.Logger
	handlers map[string]HandlerFunc
	queue    string
	mu       sync.RWMutex
}

// NewConsumer creates a consumer that joins the given queue group
func NewConsumer(nc *nats.Conn, queue string, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		nc:       nc,
		queue:    queue,
		logger:   logger,
		handlers: make(map[string]HandlerFunc),
	}
}

// Handle registers fn for subject, replacing any previous handler
func (c *Consumer) Handle(subject string, fn HandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[subject] = fn
}

// Start subscribes to every registered subject and blocks until ctx is done
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.RLock()
	subjects := make([]string, 0, len(c.handlers))
	for subject := range c.handlers {
		subjects = append(subjects, subject)
	}
	c.mu.RUnlock()

	subs := make([]*nats.Subscription, 0, len(subjects))
	defer func() {
		for _, sub := range subs {
			_ = sub.Unsubscribe()
		}
	}()

	for _, subject := range subjects {
		sub, err := c.nc.QueueSubscribe(subject, c.queue, func(msg *nats.Msg) {
			c.dispatch(ctx, msg)
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		subs = append(subs, sub)
	}

	c.logger.Info("event consumer started", "queue", c.queue, "subjects", subjects)
	<-ctx.Done()
	c.logger.Info("event consumer shutting down", "queue", c.queue)
	return ctx.Err()
}

// dispatch decodes msg and runs its handler. Failures are logged, not redelivered.
func (c *Consumer) dispatch(ctx context.Context, msg *nats.Msg) {
	c.mu.RLock()
	fn, ok := c.handlers[msg.Subject]
	c.mu.RUnlock()
	if !ok {
		c.logger.Debug("no handler for subject", "subject", msg.Subject)
		return
	}

	var env Envelope
	if err := json.Unmarshal(msg.Data, &env); err != nil {
		c.logger.Warn("dropping malformed event", "subject", msg.Subject, "error", err)
		return
	}

	if err := fn(ctx, env); err != nil {
		c.logger.Error("event handler failed", "subject", msg.Subject, "event_id", env.ID, "error", err)
	}
}
