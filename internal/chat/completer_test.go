package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCompleter(t *testing.T) {
	c := NewStaticCompleter(0)
	for range 10 {
		reply, err := c.Complete(context.Background(), "hi")
		require.NoError(t, err)
		assert.True(t, slices.Contains(CannedResponses, reply))
	}
}

func TestStaticCompleterHonoursContext(t *testing.T) {
	c := NewStaticCompleter(time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Complete(ctx, "hi")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPCompleter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "recommend a thriller", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Try "},{"text":"Se7en."}]}}]}`))
	}))
	defer srv.Close()

	c := NewHTTPCompleter(srv.URL+"/", "secret", "test-model")
	reply, err := c.Complete(context.Background(), "recommend a thriller")
	require.NoError(t, err)
	assert.Equal(t, "Try Se7en.", reply)
}

func TestHTTPCompleterErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "non-200", status: http.StatusTooManyRequests, body: `quota`, wantErr: "status 429"},
		{name: "bad json", status: http.StatusOK, body: `{`, wantErr: "decode"},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, wantErr: "no text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPCompleter(srv.URL, "k", "m").Complete(context.Background(), "hello")
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
		})
	}
}
