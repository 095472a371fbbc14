package newsfeed

import (
	"sort"
	"strings"

	"Parlor/internal/core/posts"
)

// normalize clamps paging fields: page < 1 becomes 1, page size < 1 becomes
// DefaultPageSize and anything above MaxPageSize is capped
func normalize(f Filter) Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	f.SearchQuery = strings.TrimSpace(f.SearchQuery)
	f.Hashtag = strings.TrimLeft(strings.TrimSpace(f.Hashtag), "#")
	return f
}

// TotalPages is ceil(total/pageSize); zero when either is non-positive
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Apply runs the filter pass over one fetched page. Predicates are applied in
// order (search, hashtag, date range, repost exclusion) and the survivors are
// stably sorted newest first. The input slice is not modified.
func Apply(page []*posts.Post, f Filter) []*posts.Post {
	query := strings.ToLower(f.SearchQuery)
	tag := f.Hashtag

	out := make([]*posts.Post, 0, len(page))
	for _, p := range page {
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		if tag != "" && !hasHashtag(p, tag) {
			continue
		}
		if f.FromDate != nil && p.CreatedAt.Before(*f.FromDate) {
			continue
		}
		if f.ToDate != nil && p.CreatedAt.After(*f.ToDate) {
			continue
		}
		if !f.IncludeReposts && p.RepostCount > 0 {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// matchesSearch expects a lowercased query
func matchesSearch(p *posts.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Content), query) {
		return true
	}
	for _, h := range p.Hashtags {
		if strings.Contains(strings.ToLower(h), query) {
			return true
		}
	}
	return false
}

func hasHashtag(p *posts.Post, tag string) bool {
	for _, h := range p.Hashtags {
		if strings.EqualFold(h, tag) {
			return true
		}
	}
	return false
}
