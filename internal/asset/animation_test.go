package asset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lottie = `{"v":"5.7.4","fr":30,"ip":0,"op":60,"w":512,"h":512,"layers":[{"ty":4}]}`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSuccess(t *testing.T) {
	srv := serve(t, http.StatusOK, lottie)

	data, err := NewFetcher(srv.URL, 5*time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, lottie, string(data))
}

func TestFetchFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"error":"missing"}`},
		{"server error", http.StatusInternalServerError, lottie},
		{"not json", http.StatusOK, "<html>nope</html>"},
		{"json array", http.StatusOK, `[1,2,3]`},
		{"no layers", http.StatusOK, `{"v":"5.7.4"}`},
		{"layers not array", http.StatusOK, `{"layers":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			_, err := NewFetcher(srv.URL, 5*time.Second).Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := serve(t, http.StatusOK, lottie)
	url := srv.URL
	srv.Close()

	_, err := NewFetcher(url, time.Second).Fetch(context.Background())
	assert.Error(t, err)
}

func TestAnimationFallbackOn404(t *testing.T) {
	srv := serve(t, http.StatusNotFound, "")

	var a Animation
	err := a.Load(context.Background(), NewFetcher(srv.URL, time.Second))
	assert.Error(t, err)
	assert.False(t, a.Ready())
	_, ok := a.Data()
	assert.False(t, ok)
}

func TestAnimationLoadAsync(t *testing.T) {
	srv := serve(t, http.StatusOK, lottie)

	var a Animation
	select {
	case <-a.LoadAsync(context.Background(), NewFetcher(srv.URL, time.Second)):
	case <-time.After(5 * time.Second):
		t.Fatal("animation load did not finish")
	}

	require.True(t, a.Ready())
	data, ok := a.Data()
	require.True(t, ok)
	assert.True(t, strings.Contains(string(data), `"layers"`))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]byte(lottie)))
	assert.Error(t, Validate([]byte(`{"layers":`)))
	assert.Error(t, Validate([]byte(`"layers"`)))
}
