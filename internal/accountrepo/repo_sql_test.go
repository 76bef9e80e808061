package accountrepo

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/levels"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/dbpkg"
	"github.com/go-petr/bank-ledger/pkg/randompkg"

	_ "github.com/lib/pq"
)

var testRepo *RepoSQL

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	dialect, err := DialectForDriver(config.DBDriver)
	if err != nil {
		log.Fatal("cannot resolve dialect:", err)
	}

	policy, err := levels.Parse(config.Levels)
	if err != nil {
		log.Fatal("cannot parse level policy:", err)
	}

	testRepo = NewRepoSQL(testDB, dialect, policy)

	if err := testRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("cannot ensure schema:", err)
	}

	os.Exit(m.Run())
}

func randomAccount(t *testing.T) domain.Account {
	t.Helper()

	a := domain.NewAccount(uuid.New())
	a.Name = randompkg.Owner()
	a.Balance = decimal.RequireFromString(randompkg.MoneyAmountBetween(1_000, 10_000)).Round(2)
	level := domain.Level{Tier: levels.DefaultTier, MaxBalance: decimal.NewFromInt(50_000)}
	a.Level = &level

	return a
}

func TestUpsertRoundTrip(t *testing.T) {
	a := randomAccount(t)

	rows, err := testRepo.Upsert(context.Background(), a)
	require.NoError(t, err)
	require.NotZero(t, rows)

	got, err := testRepo.Get(context.Background(), a.ID)
	require.NoError(t, err)

	require.Equal(t, a.ID, got.ID)
	require.Equal(t, a.Name, got.Name)
	require.True(t, a.Balance.Equal(got.Balance), "balance = %v, want %v", got.Balance, a.Balance)
}

func TestUpsertUpdatesExistingRow(t *testing.T) {
	a := randomAccount(t)

	_, err := testRepo.Upsert(context.Background(), a)
	require.NoError(t, err)

	a.Balance = a.Balance.Add(decimal.NewFromInt(100))

	_, err = testRepo.Upsert(context.Background(), a)
	require.NoError(t, err)

	got, err := testRepo.Get(context.Background(), a.ID)
	require.NoError(t, err)
	require.True(t, a.Balance.Equal(got.Balance), "balance = %v, want %v", got.Balance, a.Balance)
}

func TestGetNotFound(t *testing.T) {
	_, err := testRepo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestReadAll(t *testing.T) {
	a := randomAccount(t)

	_, err := testRepo.Upsert(context.Background(), a)
	require.NoError(t, err)

	accounts, err := testRepo.ReadAll(context.Background())
	require.NoError(t, err)

	var found bool

	for _, got := range accounts {
		if got.ID == a.ID {
			found = true

			require.Equal(t, a.Name, got.Name)
			require.True(t, a.Balance.Equal(got.Balance))
		}
	}

	require.True(t, found, "upserted account missing from ReadAll")
}

func TestDelete(t *testing.T) {
	a := randomAccount(t)

	_, err := testRepo.Upsert(context.Background(), a)
	require.NoError(t, err)

	require.NoError(t, testRepo.Delete(context.Background(), a.ID))

	_, err = testRepo.Get(context.Background(), a.ID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.ErrorIs(t, testRepo.Delete(context.Background(), a.ID), domain.ErrAccountNotFound)
}
