package analysis

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"

	"github.com/kova98/redditgrow.api/enums"
	"github.com/kova98/redditgrow.api/matchers"
	"github.com/kova98/redditgrow.api/models"
)

// MaxReplyDepth is the deepest level that still gets its replies expanded.
// Top-level comments are depth 0, so at most three levels are returned.
const MaxReplyDepth = 2

// BuildCommentTree converts listing children into comments sorted by score,
// highest first. Ties keep upstream order. Stubs, tombstones and entries that
// fail to decode are dropped.
func BuildCommentTree(children []models.RedditThing, depth int) []models.Comment {
	comments := make([]models.Comment, 0, len(children))

	for _, child := range children {
		if child.Kind != enums.KindComment || len(child.Data) == 0 {
			continue
		}

		var raw models.RedditComment
		if err := json.Unmarshal(child.Data, &raw); err != nil {
			continue
		}
		if matchers.IsTombstone(raw.Body) {
			continue
		}

		comment := models.Comment{
			ID:         raw.ID,
			Author:     orDefault(raw.Author, defaultAuthor),
			Body:       raw.Body,
			Score:      raw.Score,
			CreatedUTC: raw.CreatedUTC,
			Replies:    []models.Comment{},
		}

		if depth < MaxReplyDepth {
			if replies, ok := decodeReplies(raw.Replies); ok {
				comment.Replies = BuildCommentTree(replies.Data.Children, depth+1)
			}
		}

		comments = append(comments, comment)
	}

	slices.SortStableFunc(comments, func(a, b models.Comment) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return comments
}

// decodeReplies reports false for the empty string Reddit sends when a comment
// has no replies.
func decodeReplies(raw json.RawMessage) (models.RedditListing, bool) {
	var listing models.RedditListing
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return listing, false
	}
	if err := json.Unmarshal(raw, &listing); err != nil {
		return listing, false
	}
	return listing, true
}
