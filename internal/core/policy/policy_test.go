package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.True(t, CanModify(owner, owner))
	assert.False(t, CanModify(other, owner))
	assert.False(t, CanModify(uuid.Nil, owner))
	assert.False(t, CanModify(uuid.Nil, uuid.Nil), "nil actor must never match a nil owner")
}

func TestCanViewProfile(t *testing.T) {
	owner := uuid.New()
	viewer := uuid.New()

	tests := []struct {
		name       string
		actor      uuid.UUID
		profile    Profile
		subscribed bool
		want       bool
	}{
		{"public profile, stranger", viewer, Profile{OwnerID: owner}, false, true},
		{"public profile, anonymous", uuid.Nil, Profile{OwnerID: owner}, false, true},
		{"private profile, owner", owner, Profile{OwnerID: owner, Private: true}, false, true},
		{"private profile, stranger", viewer, Profile{OwnerID: owner, Private: true}, false, false},
		{"private profile, subscriber", viewer, Profile{OwnerID: owner, Private: true}, true, true},
		{"private profile, anonymous", uuid.Nil, Profile{OwnerID: owner, Private: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewProfile(tt.actor, tt.profile, tt.subscribed))
		})
	}
}

func TestCanManageSubscription(t *testing.T) {
	follower := uuid.New()
	following := uuid.New()
	stranger := uuid.New()

	assert.True(t, CanManageSubscription(follower, follower, following))
	assert.True(t, CanManageSubscription(following, follower, following))
	assert.False(t, CanManageSubscription(stranger, follower, following))

	assert.True(t, CanReviewSubscription(following, following))
	assert.False(t, CanReviewSubscription(follower, following))
}
