package models

import "github.com/kova98/redditgrow.api/enums"

type AnalyzeRequest struct {
	PostURL string `json:"postUrl"`
}

type Post struct {
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

type Comment struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Body       string    `json:"body"`
	Score      int       `json:"score"`
	CreatedUTC float64   `json:"created_utc"`
	Replies    []Comment `json:"replies"`
}

type Insights struct {
	Engagement enums.EngagementLevel `json:"engagement"`
	Language   string                `json:"language,omitempty"`
}

type AnalysisResult struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
	Insights Insights  `json:"insights"`
}

type AnalyzeResponse struct {
	Success bool `json:"success"`
	AnalysisResult
}
