package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

const DefaultTickInterval = time.Minute

// DueMarker is implemented by database.CampaignRepository.
type DueMarker interface {
	MarkDueFollowUps(ctx context.Context, now time.Time) (int, error)
}

// FollowUpDueWorker periodically marks scheduled follow-ups as due once their
// suggested send date has passed. It does not send anything.
type FollowUpDueWorker struct {
	repo         DueMarker
	tickInterval time.Duration
	now          func() time.Time
}

func NewFollowUpDueWorker(repo DueMarker, tick time.Duration) *FollowUpDueWorker {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return &FollowUpDueWorker{
		repo:         repo,
		tickInterval: tick,
		now:          time.Now,
	}
}

func (w *FollowUpDueWorker) Start(ctx context.Context) {
	log.Printf("[SCHEDULER] follow-up worker started (tick %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.markDue(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[SCHEDULER] follow-up worker stopped")
			return
		case <-ticker.C:
			w.markDue(ctx)
		}
	}
}

func (w *FollowUpDueWorker) markDue(ctx context.Context) int {
	n, err := w.repo.MarkDueFollowUps(ctx, w.now())
	if err != nil {
		log.Printf("[SCHEDULER] failed to mark due follow-ups: %v", err)
		return 0
	}
	if n > 0 {
		middleware.RecordFollowUpsDue(n)
		log.Printf("[SCHEDULER] %d follow-up(s) marked as DUE", n)
	}
	return n
}
