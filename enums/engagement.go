package enums

type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

// EngagementOf weighs each comment as two upvotes.
// For example, a post with 50 points and 30 comments scores 110, which is medium.
func EngagementOf(score, numComments int) EngagementLevel {
	engagement := score + numComments*2
	switch {
	case engagement > 1000:
		return EngagementHigh
	case engagement > 100:
		return EngagementMedium
	default:
		return EngagementLow
	}
}
