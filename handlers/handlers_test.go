package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kova98/redditgrow.api/data"
)

var testUser = data.User{ID: uuid.MustParse("6f1c2a0e-5b7d-4c3a-9e8f-0a1b2c3d4e5f"), Name: "tester"}

// call runs h as an authenticated request for testUser.
func call(h Handler, method, target, body string) Result {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(WithUser(req.Context(), testUser))
	return h(httptest.NewRecorder(), req)
}

// roundTrip encodes a result body the way the server does and decodes it
// into a generic map.
func roundTrip(t *testing.T, res Result) map[string]any {
	t.Helper()
	raw, err := json.Marshal(res.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func assertCode(t *testing.T, expected int, res Result) {
	t.Helper()
	require.Equal(t, expected, res.Code, "body: %+v", res.Body)
}
