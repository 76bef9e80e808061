package syncqueue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/domain"
)

const timestampFormat = "02.01.2006 15:04:05:000"

// Upserter provides the persistence gateway interface needed by the scheduler.
//
//go:generate mockgen -source scheduler.go -destination scheduler_mock.go -package syncqueue
type Upserter interface {
	Upsert(ctx context.Context, a domain.Account) (int64, error)
}

// Scheduler drains the queue at a fixed rate: at most one snapshot per tick,
// always the most recently enqueued one across all accounts. The remaining
// snapshots stay queued for future ticks. A flushed snapshot is removed from
// the queue whether the write succeeded or not; there is no retry.
//
// One scheduler instance serves every account in the process.
type Scheduler struct {
	queue  *Queue
	repo   Upserter
	delay  time.Duration
	period time.Duration
	debug  bool
	logger zerolog.Logger

	// flushMu makes flush execution mutually exclusive with itself.
	flushMu sync.Mutex

	stopOnce sync.Once
	stop     chan struct{}
}

// NewScheduler returns a scheduler draining the given queue through the
// given persistence gateway.
func NewScheduler(queue *Queue, repo Upserter, delay, period time.Duration, debug bool, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		queue:  queue,
		repo:   repo,
		delay:  delay,
		period: period,
		debug:  debug,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start launches the flush timer: first tick after delay, then one tick
// every period.
func (s *Scheduler) Start() {
	go s.run()
}

// Stop halts the flush timer. Snapshots still queued are not flushed.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Scheduler) run() {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-s.stop:
		return
	}

	s.flush(context.Background())

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush(context.Background())
		case <-s.stop:
			return
		}
	}
}

// flush persists the most recently enqueued snapshot, if any.
func (s *Scheduler) flush(ctx context.Context) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	last, ok := s.queue.Last()
	if !ok {
		return
	}

	timestamp := last.EnqueuedAt.Format(timestampFormat)

	_, err := s.repo.Upsert(ctx, last.Account)

	s.queue.Remove(last)

	if err != nil {
		s.logger.Error().Err(err).
			Str("uuid", last.Account.ID.String()).
			Str("amount", last.Account.Balance.String()).
			Str("timestamp", timestamp).
			Msg("failed bank transaction")

		return
	}

	if s.debug {
		s.logger.Debug().
			Str("uuid", last.Account.ID.String()).
			Str("amount", last.Account.Balance.String()).
			Str("timestamp", timestamp).
			Msg("processed bank transaction")
	}
}
