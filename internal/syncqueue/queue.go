// Package syncqueue buffers pending balance snapshots and flushes them to
// storage at a bounded rate.
package syncqueue

import (
	"sync"
	"time"

	"github.com/go-petr/bank-ledger/internal/domain"
)

// Snapshot is a copy of an account's fields captured at enqueue time.
// Later mutations to the live account do not change a queued snapshot.
type Snapshot struct {
	Account    domain.Account
	EnqueuedAt time.Time

	seq uint64
}

// Queue is a concurrent-safe buffer of pending snapshots. Any number of
// producers may Add while a flush is draining.
type Queue struct {
	mu    sync.Mutex
	seq   uint64
	items []Snapshot
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add enqueues a snapshot of the given account.
func (q *Queue) Add(a domain.Account) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	q.items = append(q.items, Snapshot{
		Account:    a,
		EnqueuedAt: time.Now(),
		seq:        q.seq,
	})
}

// Last returns the most recently enqueued snapshot without removing it.
func (q *Queue) Last() (Snapshot, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return Snapshot{}, false
	}

	return q.items[len(q.items)-1], true
}

// Remove deletes the given snapshot from the queue if it is still present.
func (q *Queue) Remove(s Snapshot) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.items {
		if q.items[i].seq == s.seq {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of queued snapshots.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
