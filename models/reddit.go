package models

import (
	"encoding/json"

	"github.com/kova98/redditgrow.api/enums"
)

type RedditListing struct {
	Kind string `json:"kind"`
	Data struct {
		Children []RedditThing `json:"children"`
	} `json:"data"`
}

// RedditThing keeps Data raw because its shape depends on Kind:
// "more" stubs carry a list of ids where comments carry a body.
type RedditThing struct {
	Kind enums.ThingKind `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type RedditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Selftext    string  `json:"selftext"`
	URL         string  `json:"url"`
	UpvoteRatio float64 `json:"upvote_ratio"`
}

type RedditComment struct {
	ID         string  `json:"id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	// Replies is "" when there are none, a listing otherwise.
	Replies json.RawMessage `json:"replies"`
}

type RedditIdentity struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TotalKarma   int     `json:"total_karma"`
	LinkKarma    int     `json:"link_karma"`
	CommentKarma int     `json:"comment_karma"`
	CreatedUTC   float64 `json:"created_utc"`
}
