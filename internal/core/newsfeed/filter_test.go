package newsfeed

import (
	"testing"
	"time"

	"Parlor/internal/core/posts"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.PageSize)
	assert.True(t, f.IncludeReposts)
	assert.True(t, f.IncludeComments)
}

func TestApply_PredicatesCombine(t *testing.T) {
	from := base
	match := &posts.Post{ID: uuid.New(), CreatedAt: base.Add(time.Minute), Content: "Go release", Hashtags: []string{"Go"}}
	wrongTag := &posts.Post{ID: uuid.New(), CreatedAt: base.Add(time.Minute), Content: "Go release", Hashtags: []string{"rust"}}
	tooOld := &posts.Post{ID: uuid.New(), CreatedAt: base.Add(-time.Minute), Content: "Go release", Hashtags: []string{"go"}}
	reposted := &posts.Post{ID: uuid.New(), CreatedAt: base.Add(time.Minute), Content: "Go release", Hashtags: []string{"go"}, RepostCount: 3}

	f := normalize(Filter{
		SearchQuery:    "  release ",
		Hashtag:        "GO",
		FromDate:       &from,
		IncludeReposts: false,
	})

	out := Apply([]*posts.Post{match, wrongTag, tooOld, reposted}, f)
	assert.Equal(t, []uuid.UUID{match.ID}, ids(out))
}

func TestApply_IncludeCommentsHasNoEffect(t *testing.T) {
	page := []*posts.Post{{ID: uuid.New(), CreatedAt: base}}

	on := DefaultFilter()
	off := DefaultFilter()
	off.IncludeComments = false

	assert.Equal(t, ids(Apply(page, on)), ids(Apply(page, off)))
}

func TestApply_EmptyPage(t *testing.T) {
	out := Apply(nil, DefaultFilter())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
