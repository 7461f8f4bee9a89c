package handlers

import (
	"errors"
	"net/http"
)

type Handler func(http.ResponseWriter, *http.Request) Result

type Result struct {
	Error error
	Code  int
	Body  interface{}
}

// ErrorResponse is the failure shape of the analysis endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is the failure shape of the OAuth endpoints.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func BadRequest(message string) Result {
	return Result{
		Code: http.StatusBadRequest,
		Body: ErrorResponse{Error: message},
	}
}

func BadGateway(message string) Result {
	return Result{
		Code: http.StatusBadGateway,
		Body: ErrorResponse{Error: message},
	}
}

func InternalError(error error, message string) Result {
	return Result{
		Error: errors.Join(errors.New(message), error),
		Code:  http.StatusInternalServerError,
		Body:  ErrorResponse{Error: "Internal server error."},
	}
}

func Failure(code int, message string) Result {
	return Result{
		Code: code,
		Body: MessageResponse{Message: message},
	}
}

func Ok(body interface{}) Result {
	return Result{
		Code: http.StatusOK,
		Body: body,
	}
}

func NoContent() Result {
	return Result{Code: http.StatusNoContent}
}

func Unauthorized(message string) Result {
	return Result{
		Code: http.StatusUnauthorized,
		Body: ErrorResponse{Error: message},
	}
}
