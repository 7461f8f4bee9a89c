package matchers

import (
	"regexp"
	"strings"
)

var threadURLPattern = regexp.MustCompile(`^https?://(?:www\.)?reddit\.com/r/([^/?#]+)/comments/([^/?#]+)`)

// MatchThreadURL extracts the subreddit and thread id from a Reddit thread URL.
// Anything after the thread id (slug, query, fragment) is ignored.
func MatchThreadURL(url string) (subreddit, threadID string, ok bool) {
	m := threadURLPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// IsTombstone reports whether a comment body is the placeholder Reddit leaves
// behind for deleted or removed comments.
func IsTombstone(body string) bool {
	return body == "[deleted]" || body == "[removed]"
}
