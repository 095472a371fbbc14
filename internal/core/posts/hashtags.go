package posts

import "strings"

// ExtractHashtags returns the hashtags in content. A hashtag is a
// whitespace-separated word starting with '#'; all leading '#' are trimmed.
// Tags are deduplicated case-insensitively and keep their first spelling.
func ExtractHashtags(content string) []string {
	tags := []string{}
	seen := make(map[string]struct{})

	for _, word := range strings.Fields(content) {
		if !strings.HasPrefix(word, "#") {
			continue
		}
		tag := strings.TrimLeft(word, "#")
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}
