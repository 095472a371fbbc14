// Package notify sends emails in reaction to follow graph events.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"Parlor/internal/core/subscriptions"
	"Parlor/internal/core/users"
	"Parlor/internal/events"
	"Parlor/internal/mail"

	"github.com/google/uuid"
)

// UserGetter resolves the two ends of an edge
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*users.User, error)
}

// Notifier emails the followed user about pending requests and the follower about approvals
type Notifier struct {
	users  UserGetter
	mailer mail.Mailer
	logger *slog.Logger
}

// NewNotifier creates a notifier
func NewNotifier(users UserGetter, mailer mail.Mailer, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{users: users, mailer: mailer, logger: logger}
}

// Register attaches the notifier's handlers to c
func (n *Notifier) Register(c *events.Consumer) {
	c.Handle(events.SubjectSubscriptionCreated, n.HandleSubscriptionCreated)
	c.Handle(events.SubjectSubscriptionApproved, n.HandleSubscriptionApproved)
}

// HandleSubscriptionCreated mails the owner of a private account.
// Approved edges to public accounts need no action.
func (n *Notifier) HandleSubscriptionCreated(ctx context.Context, env events.Envelope) error {
	sub, err := decodeSubscription(env)
	if err != nil {
		return err
	}
	if sub.Status != subscriptions.StatusPending {
		return nil
	}

	follower, following, err := n.pair(ctx, sub)
	if err != nil {
		return err
	}

	n.logger.Debug("sending follow request email", "subscription_id", sub.ID)
	return n.mailer.Send(ctx, mail.FollowRequestMessage(following.Email, follower.Username))
}

// HandleSubscriptionApproved mails the follower
func (n *Notifier) HandleSubscriptionApproved(ctx context.Context, env events.Envelope) error {
	sub, err := decodeSubscription(env)
	if err != nil {
		return err
	}

	follower, following, err := n.pair(ctx, sub)
	if err != nil {
		return err
	}

	n.logger.Debug("sending follow approved email", "subscription_id", sub.ID)
	return n.mailer.Send(ctx, mail.FollowApprovedMessage(follower.Email, following.Username))
}

func (n *Notifier) pair(ctx context.Context, sub *subscriptions.Subscription) (*users.User, *users.User, error) {
	follower, err := n.users.GetByID(ctx, sub.FollowerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load follower %s: %w", sub.FollowerID, err)
	}
	following, err := n.users.GetByID(ctx, sub.FollowingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load followed user %s: %w", sub.FollowingID, err)
	}
	return follower, following, nil
}

func decodeSubscription(env events.Envelope) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	if err := json.Unmarshal(env.Payload, &sub); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", env.Subject, err)
	}
	return &sub, nil
}
