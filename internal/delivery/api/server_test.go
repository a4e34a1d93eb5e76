package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ethos/config"
	apimiddleware "ethos/internal/delivery/api/middleware"
	"ethos/internal/infra/ratelimit"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIPExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		trustedProxies []string
		remoteAddr     string
		forwardedFor   string
		realIP         string
		want           string
	}{
		{
			name:         "no proxies ignores forwarded for",
			remoteAddr:   "203.0.113.7:5555",
			forwardedFor: "10.0.0.1",
			want:         "203.0.113.7",
		},
		{
			name:       "no proxies ignores x-real-ip",
			remoteAddr: "203.0.113.7:5555",
			realIP:     "198.51.100.9",
			want:       "203.0.113.7",
		},
		{
			name:           "untrusted peer ignores forwarded for",
			trustedProxies: []string{"10.1.0.0/16"},
			remoteAddr:     "203.0.113.7:5555",
			forwardedFor:   "198.51.100.9",
			want:           "203.0.113.7",
		},
		{
			name:           "trusted peer uses forwarded for",
			trustedProxies: []string{"10.1.0.0/16"},
			remoteAddr:     "10.1.2.3:443",
			forwardedFor:   "198.51.100.9",
			want:           "198.51.100.9",
		},
		{
			name:           "private peer outside configured range is untrusted",
			trustedProxies: []string{"10.1.0.0/16"},
			remoteAddr:     "192.168.1.5:443",
			forwardedFor:   "198.51.100.9",
			want:           "192.168.1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			extractor, err := newIPExtractor(tt.trustedProxies)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(echo.HeaderXForwardedFor, tt.forwardedFor)
			}
			if tt.realIP != "" {
				req.Header.Set(echo.HeaderXRealIP, tt.realIP)
			}

			assert.Equal(t, tt.want, extractor(req))
		})
	}
}

func TestNewIPExtractor_InvalidCIDR(t *testing.T) {
	t.Parallel()

	_, err := newIPExtractor([]string{"10.0.0.0/8", "not-a-cidr"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-cidr")
}

func TestNewServer_RejectsInvalidTrustedProxy(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.HTTP.Port = 3000
	cfg.HTTP.TrustedProxies = []string{"10.0.0.300/8"}

	srv, err := NewServer(ServerParams{Cfg: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	require.Error(t, err)
	assert.Nil(t, srv)
}

func TestRateLimit_ForwardedForDoesNotSplitSocketAddress(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	limiter, err := ratelimit.New(time.Minute, 2, time.Minute, clock, logger)
	require.NoError(t, err)
	t.Cleanup(limiter.Stop)

	extractor, err := newIPExtractor(nil)
	require.NoError(t, err)

	e := echo.New()
	e.IPExtractor = extractor
	rateLimit := apimiddleware.NewRateLimitMiddleware(apimiddleware.RateLimitMiddlewareParams{
		Limiter: limiter,
		Clock:   clock,
		Logger:  logger,
	})
	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, rateLimit.Handle)

	admitted := 0
	for i := range 20 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set(echo.HeaderXRealIP, fmt.Sprintf("10.0.1.%d", i))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Code == http.StatusNoContent {
			admitted++
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}

	assert.Equal(t, 2, admitted)
}
