package analysis

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/kova98/redditgrow.api/enums"
	"github.com/kova98/redditgrow.api/metrics"
	"github.com/kova98/redditgrow.api/models"
)

// MaxComments caps the top-level comments in a result.
const MaxComments = 20

type ThreadFetcher interface {
	FetchThread(ctx context.Context, subreddit, threadID string) ([]models.RedditListing, error)
}

// Analyzer runs validate, fetch, normalize, build tree and assemble once per
// call. It holds no per-request state and is safe for concurrent use.
type Analyzer struct {
	logger   *slog.Logger
	fetcher  ThreadFetcher
	detector LanguageDetector
	metrics  *metrics.Metrics
}

// NewAnalyzer accepts a nil detector and nil metrics.
func NewAnalyzer(logger *slog.Logger, fetcher ThreadFetcher, detector LanguageDetector, m *metrics.Metrics) *Analyzer {
	return &Analyzer{
		logger:   logger,
		fetcher:  fetcher,
		detector: detector,
		metrics:  m,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, postURL string) (models.AnalysisResult, error) {
	stage := enums.StageValidating
	fail := func(err error) (models.AnalysisResult, error) {
		a.logger.Debug("analysis failed", "stage", stage, "url", postURL, "error", err)
		a.metrics.ObserveAnalysis(stage)
		return models.AnalysisResult{}, errors.Wrap(err, string(stage))
	}

	subreddit, threadID, err := ParseThreadURL(postURL)
	if err != nil {
		return fail(err)
	}

	stage = enums.StageFetching
	listings, err := a.fetcher.FetchThread(ctx, subreddit, threadID)
	if err != nil {
		return fail(err)
	}

	stage = enums.StageNormalizing
	if len(listings) == 0 {
		return fail(&UpstreamError{Reason: ReasonMalformedResponse})
	}
	post, err := NormalizePost(listings[0], subreddit, postURL)
	if err != nil {
		return fail(err)
	}

	stage = enums.StageBuildingTree
	var comments []models.Comment
	if len(listings) > 1 {
		comments = BuildCommentTree(listings[1].Data.Children, 0)
	}

	result := Assemble(post, comments)
	result.Insights = buildInsights(post, a.detector)

	a.metrics.ObserveAnalysis(enums.StageDone)
	a.logger.Debug("analysis done", "subreddit", subreddit, "thread", threadID, "comments", len(result.Comments))

	return result, nil
}

// Assemble caps the top-level comments at MaxComments.
func Assemble(post models.Post, comments []models.Comment) models.AnalysisResult {
	if comments == nil {
		comments = []models.Comment{}
	}
	if len(comments) > MaxComments {
		comments = comments[:MaxComments]
	}
	return models.AnalysisResult{
		Post:     post,
		Comments: comments,
	}
}
