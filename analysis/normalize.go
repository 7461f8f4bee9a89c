package analysis

import (
	"bytes"
	"encoding/json"

	"github.com/kova98/redditgrow.api/models"
)

const (
	defaultTitle       = "No title"
	defaultAuthor      = "deleted"
	defaultUpvoteRatio = 0.5
)

// NormalizePost builds the post record from the first listing of a thread
// response. Empty upstream fields fall back to defaults; subreddit and url fall
// back to what the caller asked for.
func NormalizePost(listing models.RedditListing, subreddit, postURL string) (models.Post, error) {
	if len(listing.Data.Children) == 0 {
		return models.Post{}, &UpstreamError{Reason: ReasonPostNotFound}
	}
	// A null child, or one without data, carries no post.
	data := listing.Data.Children[0].Data
	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return models.Post{}, &UpstreamError{Reason: ReasonPostNotFound}
	}

	var raw models.RedditPost
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Post{}, &UpstreamError{Reason: ReasonMalformedResponse, Err: err}
	}

	post := models.Post{
		Title:       orDefault(raw.Title, defaultTitle),
		Author:      orDefault(raw.Author, defaultAuthor),
		Subreddit:   orDefault(raw.Subreddit, subreddit),
		Score:       raw.Score,
		NumComments: raw.NumComments,
		CreatedUTC:  raw.CreatedUTC,
		Selftext:    raw.Selftext,
		URL:         orDefault(raw.URL, postURL),
		UpvoteRatio: raw.UpvoteRatio,
	}
	if post.UpvoteRatio == 0 {
		post.UpvoteRatio = defaultUpvoteRatio
	}

	return post, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
