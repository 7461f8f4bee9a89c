package models

type KarmaPoint struct {
	Date     string `json:"date"`
	Karma    int    `json:"karma"`
	Comments int    `json:"comments"`
	Posts    int    `json:"posts"`
}

type CommunityEngagement struct {
	Name       string `json:"name"`
	Engagement int    `json:"engagement"`
	Karma      int    `json:"karma"`
}

type TopPost struct {
	Title      string `json:"title"`
	Subreddit  string `json:"subreddit"`
	Upvotes    int    `json:"upvotes"`
	Comments   int    `json:"comments"`
	Engagement int    `json:"engagement"`
}

type AnalyticsResponse struct {
	Connected   bool                  `json:"connected"`
	Username    string                `json:"username,omitempty"`
	TimeRange   string                `json:"timeRange,omitempty"`
	KarmaGrowth []KarmaPoint          `json:"karmaGrowth,omitempty"`
	Communities []CommunityEngagement `json:"communities,omitempty"`
	TopPosts    []TopPost             `json:"topPosts,omitempty"`
}
