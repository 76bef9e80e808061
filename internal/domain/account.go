// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoRowsAffected indicates that an upsert touched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)

// Level is a static policy entry capping the balance of accounts on that tier.
type Level struct {
	Tier       int             `json:"tier"`
	MaxBalance decimal.Decimal `json:"max_balance"`
}

// Account holds the in-memory bank balance for a single identity.
//
// Balance is updated optimistically before persistence is confirmed.
// Two concurrent mutations on the same account race and the later store
// wins; callers accept this (see the ledger service).
type Account struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Level            *Level          `json:"level,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	CurrencySingular string          `json:"currency_singular"`
	CurrencyPlural   string          `json:"currency_plural"`
}

// NewAccount returns an account with default placeholder fields.
func NewAccount(id uuid.UUID) Account {
	return Account{
		ID:               id,
		Name:             "unknown",
		Balance:          decimal.Zero,
		CurrencySingular: "Coin",
		CurrencyPlural:   "Coins",
	}
}

// LevelTier returns the tier of the assigned level, or 0 when unassigned.
func (a Account) LevelTier() int {
	if a.Level == nil {
		return 0
	}

	return a.Level.Tier
}

// FormattedCurrency returns the singular currency label iff the balance
// equals exactly 1, the plural label otherwise.
func (a Account) FormattedCurrency() string {
	if a.Balance.Equal(decimal.NewFromInt(1)) {
		return a.CurrencySingular
	}

	return a.CurrencyPlural
}

// FormattedCoins returns the balance rounded to 2 decimal places with
// thousands grouping for display in messages.
func (a Account) FormattedCoins() string {
	s := a.Balance.StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var sb strings.Builder

	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}

		sb.WriteRune(d)
	}

	return sign + sb.String() + "." + fracPart
}
