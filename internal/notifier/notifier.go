// Package notifier publishes best-effort balance-change hints to a shared
// broadcast channel so that other nodes can invalidate their caches.
//
// Messages are hints only. Consumers must never treat a payload as the
// authoritative balance.
package notifier

import (
	"context"
	"fmt"

	"github.com/go-petr/bank-ledger/internal/domain"
)

// Channel is the well-known broadcast channel name.
const Channel = "bankAccountUpdates"

// Publisher publishes balance-change events. There is no acknowledgment,
// no ordering guarantee relative to other publishers and no retry.
type Publisher interface {
	Publish(ctx context.Context, a domain.Account) error
	Close() error
}

// Encode serializes the account snapshot into the wire payload.
//
// A colon inside the display name is not escaped. Known fragility kept for
// compatibility with existing consumers.
func Encode(a domain.Account) string {
	return fmt.Sprintf("%s:%s:%s:%d", a.ID, a.Name, a.Balance, a.LevelTier())
}
