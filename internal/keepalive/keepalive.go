package keepalive

import (
	"context"
	"io"
	"net/http"
	"time"

	"fintrack/internal/logger"
)

// Scheduler periodically pings the service's own health endpoint so free-tier
// hosts do not idle the process out. Each tick is fire-and-forget: a failed
// ping is logged and the next tick proceeds as scheduled.
type Scheduler struct {
	url      string
	interval time.Duration
	client   *http.Client
}

func New(url string, interval time.Duration) *Scheduler {
	return &Scheduler{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Start runs the ping loop in its own goroutine until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	logger.Info("keep-alive scheduler started", "url", s.url, "interval", s.interval)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("keep-alive scheduler stopped")
				return
			case <-ticker.C:
				s.ping(ctx)
			}
		}
	}()
}

func (s *Scheduler) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		logger.Error("keep-alive request build failed", "error", err)
		return
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("keep-alive ping failed", "url", s.url, "error", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		logger.Warn("keep-alive ping unexpected status", "url", s.url, "status", resp.StatusCode)
		return
	}

	logger.Debug("keep-alive ping ok", "url", s.url)
}
