package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"soko.backend/internal/domain/repositories"
	"soko.backend/pkg/logger"
)

const expiryBatchSize = 500

// AdExpiryJob periodically flips ads whose paid window has lapsed to
// EXPIRED. Reads already treat expiry as derived from expires_at, so
// the sweep only keeps stored status in line for reporting.
type AdExpiryJob struct {
	adRepo   repositories.AdRepository
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewAdExpiryJob creates a new ad expiry job
func NewAdExpiryJob(adRepo repositories.AdRepository, interval time.Duration) *AdExpiryJob {
	return &AdExpiryJob{
		adRepo:   adRepo,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the expiry loop until Stop is called
func (j *AdExpiryJob) Start() {
	go j.run()
}

// Stop signals the job to stop and waits for it to finish
func (j *AdExpiryJob) Stop() {
	close(j.stopCh)
	<-j.doneCh
}

func (j *AdExpiryJob) run() {
	defer close(j.doneCh)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	logger.Info(context.Background(), "Ad expiry job started",
		zap.Duration("interval", j.interval))

	for {
		select {
		case <-j.stopCh:
			logger.Info(context.Background(), "Ad expiry job stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *AdExpiryJob) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total := int64(0)
	for {
		n, err := j.adRepo.ExpireDue(ctx, time.Now(), expiryBatchSize)
		if err != nil {
			logger.Error(ctx, "Ad expiry sweep failed", zap.Error(err))
			return
		}
		total += n
		if n < expiryBatchSize {
			break
		}
	}

	if total > 0 {
		logger.Info(ctx, "Expired ads", zap.Int64("count", total))
	}
}
