// Package policy holds the authorization predicates shared by every service.
// Each predicate answers "may actor do X to resource" over plain ids so that
// owner checks and the feed privacy gate stay consistent across the codebase.
package policy

import "github.com/google/uuid"

// Profile describes the visibility of a user's content
type Profile struct {
	OwnerID uuid.UUID
	Private bool
}

// CanModify reports whether actor may edit or delete a resource owned by owner.
// An anonymous actor (uuid.Nil) may never modify anything.
func CanModify(actor, owner uuid.UUID) bool {
	return actor != uuid.Nil && actor == owner
}

// CanViewProfile reports whether actor may read the posts of profile.
// Public profiles are open to everyone. A private profile is open to its owner
// and to any actor holding a subscription to it; subscription status is not
// consulted, so a pending request is enough.
func CanViewProfile(actor uuid.UUID, profile Profile, subscribed bool) bool {
	if !profile.Private {
		return true
	}
	if actor != uuid.Nil && actor == profile.OwnerID {
		return true
	}
	return subscribed
}

// CanManageSubscription reports whether actor may remove a follow edge.
// Both ends of the edge qualify: the follower unsubscribes, the followed user
// removes a follower.
func CanManageSubscription(actor, followerID, followingID uuid.UUID) bool {
	return CanModify(actor, followerID) || CanModify(actor, followingID)
}

// CanReviewSubscription reports whether actor may approve or reject a follow
// request. Only the followed user reviews requests.
func CanReviewSubscription(actor, followingID uuid.UUID) bool {
	return CanModify(actor, followingID)
}
