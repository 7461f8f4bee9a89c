package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kova98/redditgrow.api/data"
	"github.com/kova98/redditgrow.api/handlers"
	"github.com/kova98/redditgrow.api/metrics"
)

type fakeAuth struct {
	user data.User
}

func (f fakeAuth) GetUser(_ context.Context, authHeader string) handlers.Result {
	if authHeader != "Bearer good" {
		return handlers.Unauthorized("Invalid token")
	}
	return handlers.Ok(f.user)
}

func TestPrivate_InjectsUser(t *testing.T) {
	user := data.User{ID: uuid.New(), Name: "tester"}
	srv := newServer(nil)
	srv.auth = fakeAuth{user: user}

	var seen data.User
	handler := srv.private(func(w http.ResponseWriter, r *http.Request) handlers.Result {
		seen = handlers.UserFrom(r.Context())
		return handlers.Ok(map[string]string{"ok": "yes"})
	})

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, seen.ID)
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}

func TestPrivate_RejectsBadToken(t *testing.T) {
	srv := newServer(nil)
	srv.auth = fakeAuth{}

	called := false
	handler := srv.private(func(w http.ResponseWriter, r *http.Request) handlers.Result {
		called = true
		return handlers.NoContent()
	})

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid token"}`, rec.Body.String())
}

func TestPublic_CountsRequests(t *testing.T) {
	m := metrics.New()
	srv := newServer(m)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", srv.public(func(w http.ResponseWriter, r *http.Request) handlers.Result {
		return handlers.BadRequest("Post URL is required")
	}))
	mux.Handle("GET /metrics", m.Handler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `redditgrow_http_requests_total{code="400",method="POST",path="POST /analyze"} 1`)
}

func TestWriteResult_NoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	writeResult(rec, handlers.NoContent())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestWithCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight reached the handler")
	})

	rec := httptest.NewRecorder()
	withCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/analyze", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
