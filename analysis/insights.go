package analysis

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/kova98/redditgrow.api/enums"
	"github.com/kova98/redditgrow.api/models"
)

type LanguageDetector interface {
	// Detect returns a lowercase ISO 639-1 code, or false when unsure.
	Detect(text string) (string, bool)
}

type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector loads models for the languages most common on Reddit.
// Building the detector is slow, so build one and share it.
func NewLinguaDetector() LanguageDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.Portuguese,
			lingua.German,
			lingua.French,
			lingua.Italian,
			lingua.Dutch,
			lingua.Polish,
			lingua.Swedish,
			lingua.Turkish,
		).
		WithMinimumRelativeDistance(0.1).
		WithLowAccuracyMode().
		Build()

	return &linguaDetector{detector: detector}
}

func (d *linguaDetector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}

func buildInsights(post models.Post, detector LanguageDetector) models.Insights {
	insights := models.Insights{
		Engagement: enums.EngagementOf(post.Score, post.NumComments),
	}
	if detector == nil {
		return insights
	}

	text := post.Title
	if post.Selftext != "" {
		text += "\n" + post.Selftext
	}
	if language, ok := detector.Detect(text); ok {
		insights.Language = language
	}

	return insights
}
