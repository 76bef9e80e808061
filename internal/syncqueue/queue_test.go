package syncqueue

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bank-ledger/internal/domain"
)

func account(t *testing.T, balance int64) domain.Account {
	t.Helper()

	a := domain.NewAccount(uuid.New())
	a.Balance = decimal.NewFromInt(balance)

	return a
}

func TestLastReturnsMostRecentlyEnqueued(t *testing.T) {
	t.Parallel()

	q := NewQueue()

	if _, ok := q.Last(); ok {
		t.Fatal("Last() on empty queue reported a snapshot")
	}

	first := account(t, 100)
	second := account(t, 200)

	q.Add(first)
	q.Add(second)

	last, ok := q.Last()
	if !ok {
		t.Fatal("Last() reported empty queue")
	}

	if last.Account.ID != second.ID {
		t.Errorf("Last().Account.ID = %v, want %v", last.Account.ID, second.ID)
	}

	if q.Len() != 2 {
		t.Errorf("Len() = %v, want 2", q.Len())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	q := NewQueue()

	a := account(t, 100)
	q.Add(a)

	// Mutating the live account must not change the queued payload.
	a.Balance = decimal.NewFromInt(999)

	last, ok := q.Last()
	if !ok {
		t.Fatal("Last() reported empty queue")
	}

	if !last.Account.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("queued balance = %v, want 100", last.Account.Balance)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	q := NewQueue()

	q.Add(account(t, 100))
	q.Add(account(t, 200))

	last, _ := q.Last()
	q.Remove(last)

	if q.Len() != 1 {
		t.Fatalf("Len() after Remove = %v, want 1", q.Len())
	}

	// Removing the same snapshot twice is a no-op.
	q.Remove(last)

	if q.Len() != 1 {
		t.Errorf("Len() after duplicate Remove = %v, want 1", q.Len())
	}

	remaining, ok := q.Last()
	if !ok || !remaining.Account.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("remaining snapshot balance = %v, want 100", remaining.Account.Balance)
	}
}

func TestConcurrentAdd(t *testing.T) {
	t.Parallel()

	const producers = 1000

	q := NewQueue()

	var wg sync.WaitGroup

	wg.Add(producers)

	for i := 0; i < producers; i++ {
		go func(balance int64) {
			defer wg.Done()
			q.Add(account(t, balance))
		}(int64(i))
	}

	wg.Wait()

	if q.Len() != producers {
		t.Errorf("Len() = %v, want %v", q.Len(), producers)
	}
}
