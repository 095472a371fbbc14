package subscriptions

import (
	"context"
	"fmt"
	"log/slog"

	"Parlor/internal/core/policy"
	"Parlor/internal/events"

	"github.com/google/uuid"
)

type subscriptionService struct {
	repo      Repository
	users     UserLookup
	publisher events.Publisher
	logger    *slog.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(repo Repository, users UserLookup, publisher events.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &subscriptionService{
		repo:      repo,
		users:     users,
		publisher: publisher,
		logger:    logger,
	}
}

// Subscribe creates a follow edge from followerID to followingID
func (s *subscriptionService) Subscribe(ctx context.Context, followerID, followingID uuid.UUID) (*Subscription, error) {
	if followerID == uuid.Nil {
		return nil, ErrNotAuthorized
	}
	if followingID == uuid.Nil {
		return nil, NewValidationError("followingId", "target user is required")
	}
	if followerID == followingID {
		return nil, NewValidationError("followingId", "cannot subscribe to yourself")
	}

	if _, err := s.users.IsPrivate(ctx, followerID); err != nil {
		return nil, err
	}
	private, err := s.users.IsPrivate(ctx, followingID)
	if err != nil {
		return nil, err
	}

	// Fast path for the common duplicate; the unique constraint still backs it
	if _, err := s.repo.GetByPair(ctx, followerID, followingID); err == nil {
		return nil, ErrAlreadySubscribed
	} else if !IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}

	status := StatusApproved
	if private {
		status = StatusPending
	}

	sub, err := s.repo.Create(ctx, &Subscription{
		FollowerID:  followerID,
		FollowingID: followingID,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("subscription created", "subscription_id", sub.ID, "follower_id", followerID, "following_id", followingID, "status", sub.Status)
	events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectSubscriptionCreated, sub)

	return sub, nil
}

// GetSubscription retrieves a subscription by id
func (s *subscriptionService) GetSubscription(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.repo.GetByID(ctx, id)
}

// Approve marks a pending request as approved
func (s *subscriptionService) Approve(ctx context.Context, actorID, id uuid.UUID) (*Subscription, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReviewSubscription(actorID, sub.FollowingID) {
		return nil, ErrNotAuthorized
	}
	if sub.Status == StatusApproved {
		return nil, ErrAlreadyApproved
	}

	updated, err := s.repo.UpdateStatus(ctx, id, StatusApproved)
	if err != nil {
		return nil, err
	}

	s.logger.Info("subscription approved", "subscription_id", id)
	events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectSubscriptionApproved, updated)
	return updated, nil
}

// Reject deletes a subscription request; only the followed user may reject
func (s *subscriptionService) Reject(ctx context.Context, actorID, id uuid.UUID) error {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanReviewSubscription(actorID, sub.FollowingID) {
		return ErrNotAuthorized
	}
	return s.repo.Delete(ctx, id)
}

// Unsubscribe removes the edge; the follower or the followed user may call it
func (s *subscriptionService) Unsubscribe(ctx context.Context, actorID, id uuid.UUID) error {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanManageSubscription(actorID, sub.FollowerID, sub.FollowingID) {
		return ErrNotAuthorized
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("subscription removed", "subscription_id", id, "actor_id", actorID)
	return nil
}

// Followers lists edges pointing at userID; empty status means approved
func (s *subscriptionService) Followers(ctx context.Context, userID uuid.UUID, status Status) ([]*SubscriptionView, error) {
	status, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFollowers(ctx, userID, status)
}

// Following lists edges leaving userID; empty status means approved
func (s *subscriptionService) Following(ctx context.Context, userID uuid.UUID, status Status) ([]*SubscriptionView, error) {
	status, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFollowing(ctx, userID, status)
}

// PendingRequests lists requests awaiting the actor's review
func (s *subscriptionService) PendingRequests(ctx context.Context, actorID uuid.UUID) ([]*SubscriptionView, error) {
	if actorID == uuid.Nil {
		return nil, ErrNotAuthorized
	}
	return s.repo.ListFollowers(ctx, actorID, StatusPending)
}

func normalizeStatus(status Status) (Status, error) {
	if status == "" {
		return StatusApproved, nil
	}
	if !status.Valid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return status, nil
}
