// Package levels manages the static bank level policy.
package levels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/bank-ledger/internal/domain"
)

// DefaultTier is assigned to accounts that have no level yet.
const DefaultTier = 1

// Policy is an immutable lookup table from account tier to the maximum
// allowed balance. The cap is enforced only on additions; removals and
// direct sets bypass it.
type Policy struct {
	byTier map[int]domain.Level
}

// New returns a policy holding the given levels.
func New(entries []domain.Level) *Policy {
	byTier := make(map[int]domain.Level, len(entries))
	for _, e := range entries {
		byTier[e.Tier] = e
	}

	return &Policy{byTier: byTier}
}

// Parse builds a policy from a "tier:maxBalance" comma separated string,
// e.g. "1:50000,2:250000,3:1000000".
func Parse(s string) (*Policy, error) {
	entries := []domain.Level{}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tierStr, maxStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid level entry %q", part)
		}

		tier, err := strconv.Atoi(tierStr)
		if err != nil {
			return nil, fmt.Errorf("invalid level tier %q: %w", tierStr, err)
		}

		maxBalance, err := decimal.NewFromString(maxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid level max balance %q: %w", maxStr, err)
		}

		entries = append(entries, domain.Level{Tier: tier, MaxBalance: maxBalance})
	}

	p := New(entries)

	if _, ok := p.byTier[DefaultTier]; !ok {
		return nil, fmt.Errorf("level policy must define the default tier %d", DefaultTier)
	}

	return p, nil
}

// Get returns the level for the given tier.
func (p *Policy) Get(tier int) (domain.Level, bool) {
	l, ok := p.byTier[tier]
	return l, ok
}

// Default returns the level assigned to fresh accounts.
func (p *Policy) Default() domain.Level {
	return p.byTier[DefaultTier]
}

// Resolve returns the level for the given tier, falling back to the
// default tier for unknown or unassigned (zero) tiers.
func (p *Policy) Resolve(tier int) domain.Level {
	if l, ok := p.byTier[tier]; ok {
		return l
	}

	return p.Default()
}
