package handlers

import (
	"net/http"

	"github.com/kova98/redditgrow.api/models"
)

var timeRanges = map[string]bool{"7d": true, "30d": true, "90d": true}

// Sample data shown on the dashboard until real account analytics exist.
var (
	sampleKarmaGrowth = []models.KarmaPoint{
		{Date: "2024-01-01", Karma: 1200, Comments: 15, Posts: 3},
		{Date: "2024-01-02", Karma: 1350, Comments: 22, Posts: 4},
		{Date: "2024-01-03", Karma: 1280, Comments: 18, Posts: 2},
		{Date: "2024-01-04", Karma: 1420, Comments: 25, Posts: 5},
		{Date: "2024-01-05", Karma: 1580, Comments: 31, Posts: 6},
		{Date: "2024-01-06", Karma: 1650, Comments: 28, Posts: 4},
		{Date: "2024-01-07", Karma: 1820, Comments: 35, Posts: 7},
	}
	sampleCommunities = []models.CommunityEngagement{
		{Name: "Technology", Engagement: 85, Karma: 450},
		{Name: "Gaming", Engagement: 92, Karma: 380},
		{Name: "Programming", Engagement: 78, Karma: 520},
		{Name: "Science", Engagement: 73, Karma: 290},
		{Name: "Memes", Engagement: 95, Karma: 180},
	}
	sampleTopPosts = []models.TopPost{
		{Title: "My first React app built in 2 hours!", Subreddit: "r/reactjs", Upvotes: 1200, Comments: 87, Engagement: 94},
		{Title: "Amazing AI breakthrough explained simply", Subreddit: "r/artificial", Upvotes: 856, Comments: 134, Engagement: 89},
		{Title: "Why TypeScript changed my life", Subreddit: "r/programming", Upvotes: 642, Comments: 92, Engagement: 85},
		{Title: "Free coding resources compilation", Subreddit: "r/learnprogramming", Upvotes: 523, Comments: 67, Engagement: 82},
	}
)

type AnalyticsHandler struct {
	store ConnectionStore
}

func NewAnalyticsHandler(store ConnectionStore) *AnalyticsHandler {
	return &AnalyticsHandler{store}
}

func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r.Context())

	timeRange := r.URL.Query().Get("range")
	if timeRange == "" {
		timeRange = "7d"
	}
	if !timeRanges[timeRange] {
		return BadRequest("Invalid time range.")
	}

	conn, err := h.store.Get(r.Context(), user.ID)
	if err != nil {
		return InternalError(err, "get connection: ")
	}
	if conn == nil {
		return Ok(models.AnalyticsResponse{Connected: false})
	}

	return Ok(models.AnalyticsResponse{
		Connected:   true,
		Username:    conn.Username,
		TimeRange:   timeRange,
		KarmaGrowth: sampleKarmaGrowth,
		Communities: sampleCommunities,
		TopPosts:    sampleTopPosts,
	})
}
