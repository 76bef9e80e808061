package notifier

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bank-ledger/internal/domain"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	a := domain.NewAccount(id)
	a.Name = "steve"
	a.Balance = decimal.RequireFromString("1234.56")
	a.Level = &domain.Level{Tier: 2, MaxBalance: decimal.NewFromInt(250000)}

	want := fmt.Sprintf("%s:steve:1234.56:2", id)
	if got := Encode(a); got != want {
		t.Errorf("Encode() = %v, want %v", got, want)
	}
}

func TestEncodeUnassignedLevel(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	a := domain.NewAccount(id)
	a.Balance = decimal.NewFromInt(5)

	want := fmt.Sprintf("%s:unknown:5:0", id)
	if got := Encode(a); got != want {
		t.Errorf("Encode() = %v, want %v", got, want)
	}
}

func TestEncodeDoesNotEscapeColons(t *testing.T) {
	t.Parallel()

	a := domain.NewAccount(uuid.New())
	a.Name = "a:b"

	// An embedded colon corrupts the delimited payload for consumers.
	// The format is kept as-is for compatibility.
	want := fmt.Sprintf("%s:a:b:0:0", a.ID)
	if got := Encode(a); got != want {
		t.Errorf("Encode() = %v, want %v", got, want)
	}
}
