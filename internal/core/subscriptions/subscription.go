package subscriptions

import (
	"time"

	"github.com/google/uuid"
)

// Status is the approval state of a follow edge
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved
}

// Subscription is a directed follow edge from FollowerID to FollowingID
// At most one row exists per ordered pair
type Subscription struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Status      Status    `json:"status" db:"status"`
	ID          uuid.UUID `json:"id" db:"id"`
	FollowerID  uuid.UUID `json:"followerId" db:"follower_id"`
	FollowingID uuid.UUID `json:"followingId" db:"following_id"`
}

// SubscriptionView adds the usernames of both ends for list endpoints
type SubscriptionView struct {
	Subscription
	FollowerUsername  string `json:"followerUsername" db:"follower_username"`
	FollowingUsername string `json:"followingUsername" db:"following_username"`
}
