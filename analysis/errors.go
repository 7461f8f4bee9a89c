package analysis

import "fmt"

// ValidationError means the caller supplied a bad post URL. Not retryable.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	errMissingURL   = &ValidationError{Reason: "missing url", Message: "Post URL is required"}
	errMalformedURL = &ValidationError{Reason: "malformed url", Message: "Please enter a valid Reddit post URL"}
)

// UpstreamError means the Reddit API could not produce a usable thread.
// Status is zero when the failure was not an HTTP status.
type UpstreamError struct {
	Status     int
	StatusText string
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("Reddit API returned %d: %s", e.Status, e.StatusText)
	}
	switch e.Reason {
	case ReasonMalformedResponse:
		return "Invalid response from Reddit API"
	case ReasonPostNotFound:
		return "Post data not found in Reddit API response"
	}
	if e.Err != nil {
		return fmt.Sprintf("Reddit API request failed: %s", e.Err)
	}
	return "Reddit API request failed"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

const (
	ReasonMalformedResponse = "malformed response"
	ReasonPostNotFound      = "post not found"
	ReasonRequestFailed     = "request failed"
)
