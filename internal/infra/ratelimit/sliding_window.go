// Package ratelimit implements an in-process sliding-window-log rate limiter.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ethos/config"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/service"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// SlidingWindowLimiter admits at most maxRequests per identifier within any trailing
// window. Request timestamps are kept per identifier and pruned lazily on every check;
// a background sweep removes identifiers that have gone quiet.
type SlidingWindowLimiter struct {
	window          time.Duration
	maxRequests     int
	cleanupInterval time.Duration
	clock           clockwork.Clock
	logger          *slog.Logger

	mu      sync.Mutex
	records map[string]*record

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// record holds request timestamps in arrival order, all within the trailing window.
type record struct {
	timestamps []time.Time
}

// prune drops timestamps at or before cutoff.
func (r *record) prune(cutoff time.Time) {
	i := 0
	for i < len(r.timestamps) && !r.timestamps[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return
	}

	r.timestamps = append(r.timestamps[:0], r.timestamps[i:]...)
}

// Params defines the dependencies of the fx-managed limiter.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Clock  clockwork.Clock
	Logger *slog.Logger
}

// NewFromConfig builds the limiter from the rateLimit section and stops its sweep on shutdown.
func NewFromConfig(params Params) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit
	if cfg == nil {
		return nil, domainerrors.Configuration("rate limit config must be provided")
	}

	limiter, err := New(cfg.Window, cfg.MaxRequests, cfg.CleanupInterval, params.Clock, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			limiter.Stop()

			return nil
		},
	})

	return limiter, nil
}

// New starts a limiter and its cleanup sweep. Callers must call Stop to release the
// sweep goroutine. maxRequests == 0 is valid and rejects every request.
func New(window time.Duration, maxRequests int, cleanupInterval time.Duration, clock clockwork.Clock, logger *slog.Logger) (*SlidingWindowLimiter, error) {
	if window <= 0 {
		return nil, domainerrors.Configuration("rate limit window must be positive, got %s", window)
	}
	if maxRequests < 0 {
		return nil, domainerrors.Configuration("rate limit max requests must not be negative, got %d", maxRequests)
	}
	if cleanupInterval <= 0 {
		return nil, domainerrors.Configuration("rate limit cleanup interval must be positive, got %s", cleanupInterval)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &SlidingWindowLimiter{
		window:          window,
		maxRequests:     maxRequests,
		cleanupInterval: cleanupInterval,
		clock:           clock,
		logger:          logger.With(slog.String("component", "rate_limiter")),
		records:         make(map[string]*record),
		cancel:          cancel,
		done:            make(chan struct{}),
	}

	go l.run(ctx)

	return l, nil
}

func (l *SlidingWindowLimiter) CheckLimit(identifier string) service.RateLimitResult {
	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if ok {
		rec.prune(cutoff)
	}

	count := 0
	if ok {
		count = len(rec.timestamps)
	}

	if count >= l.maxRequests {
		resetTime := now.Add(l.window)
		if count > 0 {
			resetTime = rec.timestamps[0].Add(l.window)
		}

		return service.RateLimitResult{
			Allowed:   false,
			Remaining: 0,
			ResetTime: resetTime,
		}
	}

	if !ok {
		rec = &record{timestamps: make([]time.Time, 0, 1)}
		l.records[identifier] = rec
	}
	rec.timestamps = append(rec.timestamps, now)

	return service.RateLimitResult{
		Allowed:   true,
		Remaining: l.maxRequests - len(rec.timestamps),
		ResetTime: now.Add(l.window),
	}
}

func (l *SlidingWindowLimiter) ResetLimit(identifier string) {
	l.mu.Lock()
	delete(l.records, identifier)
	l.mu.Unlock()
}

func (l *SlidingWindowLimiter) Limit() int {
	return l.maxRequests
}

// Stop ends the cleanup sweep and waits for it to exit. Safe to call more than once.
// The limiter keeps answering CheckLimit after Stop; records are then pruned only lazily.
func (l *SlidingWindowLimiter) Stop() {
	l.stopOnce.Do(func() {
		l.cancel()
		<-l.done
	})
}

func (l *SlidingWindowLimiter) run(ctx context.Context) {
	defer close(l.done)

	ticker := l.clock.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			l.sweep()
		}
	}
}

// sweep prunes every record and drops the empty ones. The map lock is held per
// identifier so a sweep over many identifiers never stalls CheckLimit for long.
func (l *SlidingWindowLimiter) sweep() {
	l.mu.Lock()
	identifiers := make([]string, 0, len(l.records))
	for id := range l.records {
		identifiers = append(identifiers, id)
	}
	l.mu.Unlock()

	removed := 0
	for _, id := range identifiers {
		if l.sweepOne(id) {
			removed++
		}
	}

	if removed > 0 {
		l.logger.Debug("rate limit records swept",
			slog.Int("removed", removed),
			slog.Int("scanned", len(identifiers)),
		)
	}
}

func (l *SlidingWindowLimiter) sweepOne(identifier string) bool {
	cutoff := l.clock.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok {
		return false
	}

	rec.prune(cutoff)
	if len(rec.timestamps) > 0 {
		return false
	}

	delete(l.records, identifier)

	return true
}

// size reports the number of tracked identifiers.
func (l *SlidingWindowLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.records)
}
