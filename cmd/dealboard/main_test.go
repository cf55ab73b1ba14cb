package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/dealboard/internal/config"
	"github.com/rovshanmuradov/dealboard/internal/ui/screen"
)

func testConfig(endpoint string) *config.Config {
	cfg := config.Default()
	cfg.Endpoint = endpoint
	return cfg
}

func TestRunOnce(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode int
		contains []string
	}{
		{
			name:     "deals",
			status:   http.StatusOK,
			body:     `[{"name":"AWP | Asiimov","buy_at":40,"sell_at":47.5,"profit":7.5,"roi":18.75},{"name":"Glock-18 | Water Elemental","buy_at":12.5,"sell_at":15,"profit":2.5,"roi":20}]`,
			wantCode: 0,
			contains: []string{"Skin Name", "AWP | Asiimov", "+$7.50", "$12.50", "20%"},
		},
		{
			name:     "empty",
			status:   http.StatusOK,
			body:     `[]`,
			wantCode: 0,
			contains: []string{screen.EmptyText},
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `{"detail":"boom"}`,
			wantCode: 1,
			contains: []string{"Error: Failed to fetch from API. Is backend running?"},
		},
		{
			name:     "malformed",
			status:   http.StatusOK,
			body:     `not json`,
			wantCode: 1,
			contains: []string{"Error: ", "Is backend running?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/deals", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var stdout, stderr bytes.Buffer
			code := runOnce(context.Background(), testConfig(srv.URL+"/deals"), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			for _, want := range tt.contains {
				assert.Contains(t, stdout.String(), want)
			}
			assert.NotContains(t, stdout.String(), screen.LoadingText)
		})
	}
}

func TestRunOnceUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/deals"
	srv.Close()

	var stdout, stderr bytes.Buffer
	code := runOnce(context.Background(), testConfig(endpoint), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Is backend running?")
}

func TestRunOnceShippedConfigSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg, err := config.LoadConfig(filepath.Join("..", "..", "configs", "config.json"))
	require.NoError(t, err)
	cfg.Endpoint = srv.URL + "/deals"

	var stdout, stderr bytes.Buffer
	code := runOnce(context.Background(), cfg, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, stdout.String(), "Error: Failed to fetch from API. Is backend running?")
}

func TestSourceOptionsFromConfig(t *testing.T) {
	cfg := testConfig("http://localhost:9000/deals")
	cfg.MinProfit = 1.5
	cfg.RequestTimeout = 3
	cfg.Retries = 2
	cfg.RetryInterval = 250

	opts := sourceOptions(cfg)

	require.Equal(t, "http://localhost:9000/deals", opts.Endpoint)
	assert.Equal(t, 1.5, opts.MinProfit)
	assert.Equal(t, 3*time.Second, opts.Timeout)
	assert.Equal(t, 2, opts.Retries)
	assert.Equal(t, 250*time.Millisecond, opts.RetryInterval)
	assert.Nil(t, opts.HTTPClient)
}
