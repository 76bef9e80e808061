package levels

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := Parse("1:50000, 2:250000,3:1000000")
	require.NoError(t, err)

	l, ok := p.Get(2)
	require.True(t, ok)
	require.Equal(t, 2, l.Tier)
	require.True(t, l.MaxBalance.Equal(decimal.NewFromInt(250000)))

	_, ok = p.Get(9)
	require.False(t, ok)

	require.Equal(t, DefaultTier, p.Default().Tier)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "MissingSeparator", input: "1"},
		{name: "BadTier", input: "x:100"},
		{name: "BadMaxBalance", input: "1:abc"},
		{name: "NoDefaultTier", input: "2:100"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tc.input)
			require.Error(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	p, err := Parse("1:50000,2:250000")
	require.NoError(t, err)

	require.Equal(t, 2, p.Resolve(2).Tier)
	require.Equal(t, DefaultTier, p.Resolve(0).Tier)
	require.Equal(t, DefaultTier, p.Resolve(42).Tier)
}
