package analysis

import (
	"strings"

	"github.com/kova98/redditgrow.api/matchers"
)

func ParseThreadURL(postURL string) (subreddit, threadID string, err error) {
	if strings.TrimSpace(postURL) == "" {
		return "", "", errMissingURL
	}
	subreddit, threadID, ok := matchers.MatchThreadURL(postURL)
	if !ok {
		return "", "", errMalformedURL
	}
	return subreddit, threadID, nil
}
