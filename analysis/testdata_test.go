package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/kova98/redditgrow.api/enums"
	"github.com/kova98/redditgrow.api/models"
)

func thing(kind enums.ThingKind, data any) models.RedditThing {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return models.RedditThing{Kind: kind, Data: raw}
}

func listing(children ...models.RedditThing) models.RedditListing {
	var l models.RedditListing
	l.Kind = "Listing"
	l.Data.Children = children
	return l
}

func comment(id string, score int, body string, replies ...models.RedditThing) models.RedditThing {
	data := map[string]any{
		"id":          id,
		"author":      "user_" + id,
		"body":        body,
		"score":       score,
		"created_utc": 1700000000.0,
		"replies":     "",
	}
	if len(replies) > 0 {
		data["replies"] = listing(replies...)
	}
	return thing(enums.KindComment, data)
}

func more(ids ...string) models.RedditThing {
	return thing(enums.KindMore, map[string]any{"count": len(ids), "children": ids})
}

func post(score int) models.RedditThing {
	return thing(enums.KindLink, map[string]any{
		"title":        "Hello",
		"author":       "op",
		"subreddit":    "test",
		"score":        score,
		"num_comments": 3,
		"created_utc":  1700000000.0,
		"selftext":     "body",
		"url":          "https://www.reddit.com/r/test/comments/abc123/hello/",
		"upvote_ratio": 0.93,
	})
}

func numbered(n int) []models.RedditThing {
	children := make([]models.RedditThing, 0, n)
	for i := 0; i < n; i++ {
		children = append(children, comment(fmt.Sprintf("c%d", i), i*7%23, fmt.Sprintf("comment %d", i)))
	}
	return children
}
