package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"ethos/internal/delivery/api/response"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/service"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"

	anonymousIdentifier = "anonymous"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Clock   clockwork.Clock
	Logger  *slog.Logger
}

// RateLimitMiddleware admits or rejects each request through the RateLimiter.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	clock   clockwork.Clock
	logger  *slog.Logger

	// rejections are logged at most once per second
	logSometimes rate.Sometimes
}

func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &RateLimitMiddleware{
		limiter:      params.Limiter,
		clock:        clock,
		logger:       params.Logger,
		logSometimes: rate.Sometimes{First: 1, Interval: time.Second},
	}
}

// Handle sets the X-RateLimit-* headers on every response and answers 429 with
// Retry-After once the caller's window is full.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identifier := callerIdentifier(c)
		result := m.limiter.CheckLimit(identifier)

		header := c.Response().Header()
		header.Set(HeaderRateLimitLimit, strconv.Itoa(m.limiter.Limit()))
		header.Set(HeaderRateLimitRemaining, strconv.Itoa(result.Remaining))
		header.Set(HeaderRateLimitReset, result.ResetTime.UTC().Format(time.RFC3339))

		if result.Allowed {
			return next(c)
		}

		retryAfter := retryAfterSeconds(result.ResetTime.Sub(m.clock.Now()))
		header.Set(HeaderRetryAfter, strconv.Itoa(retryAfter))

		m.logSometimes.Do(func() {
			m.logger.Warn("Rate limit exceeded",
				slog.String("identifier", identifier),
				slog.String("path", c.Request().URL.Path),
				slog.Int("retry_after", retryAfter),
			)
		})

		return response.HandleAppError(c, domainerrors.ErrRateLimitExceeded)
	}
}

// callerIdentifier prefers the authenticated user ID, then the client IP as
// resolved by the server's IPExtractor.
func callerIdentifier(c echo.Context) string {
	if userID, ok := GetUserID(c); ok {
		return userID.String()
	}

	if ip := c.RealIP(); ip != "" {
		return ip
	}

	return anonymousIdentifier
}

// retryAfterSeconds rounds up and never returns less than one second.
func retryAfterSeconds(wait time.Duration) int {
	seconds := int(math.Ceil(wait.Seconds()))
	if seconds < 1 {
		return 1
	}

	return seconds
}
