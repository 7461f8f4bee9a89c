package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kova98/redditgrow.api/analysis"
	"github.com/kova98/redditgrow.api/models"
)

type PostAnalyzer interface {
	Analyze(ctx context.Context, postURL string) (models.AnalysisResult, error)
}

type AnalyzeHandler struct {
	analyzer PostAnalyzer
}

func NewAnalyzeHandler(analyzer PostAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer}
}

func (h *AnalyzeHandler) AnalyzePost(w http.ResponseWriter, r *http.Request) Result {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	slog.Info("analyzing reddit post", "url", req.PostURL)

	result, err := h.analyzer.Analyze(r.Context(), req.PostURL)
	if err != nil {
		return AnalysisFailure(err)
	}

	return Ok(models.AnalyzeResponse{Success: true, AnalysisResult: result})
}

// AnalysisFailure maps a pipeline error to the response the API returns for it.
func AnalysisFailure(err error) Result {
	var validation *analysis.ValidationError
	if errors.As(err, &validation) {
		return BadRequest(validation.Error())
	}

	var upstream *analysis.UpstreamError
	if errors.As(err, &upstream) {
		slog.Warn("reddit post analysis failed", "error", err)
		return BadGateway(upstream.Error())
	}

	res := InternalError(err, "analyze post: ")
	res.Body = ErrorResponse{Error: "Failed to analyze Reddit post"}
	return res
}
