//go:build unit

package tier_test

import (
	"testing"

	"pos-loyalty/internal/domain/tier"
	"pos-loyalty/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func standardTiers() []tier.Tier {
	d := decimal.RequireFromString
	return []tier.Tier{
		{Key: "gold", DisplayName: "Gold", MinPoints: 5000, MinSpend: d("0"), EarningMultiplier: d("2"), SortOrder: 3},
		{Key: "bronze", DisplayName: "Bronze", MinPoints: 0, MaxPoints: ptr(1000), MinSpend: d("0"), EarningMultiplier: d("1"), SortOrder: 1},
		{Key: "silver", DisplayName: "Silver", MinPoints: 1000, MaxPoints: ptr(5000), MinSpend: d("0"), EarningMultiplier: d("1.5"), SortOrder: 2},
	}
}

type testCase struct {
	name   string
	mutate func([]tier.Tier) []tier.Tier
	errIs  error
}

func TestNewCatalog(t *testing.T) {
	t.Run("sorts by sort order", func(t *testing.T) {
		c, err := tier.NewCatalog(standardTiers())
		require.NoError(t, err)
		keys := []string{}
		for _, tr := range c.Tiers() {
			keys = append(keys, tr.Key)
		}
		assert.Equal(t, []string{"bronze", "silver", "gold"}, keys)
		assert.Equal(t, "bronze", c.Lowest().Key)
	})

	runCases(t, []testCase{
		{name: "valid", mutate: func(ts []tier.Tier) []tier.Tier { return ts }},
		{
			name:   "empty catalog",
			mutate: func([]tier.Tier) []tier.Tier { return nil },
			errIs:  errs.ErrInvalidTierCatalog,
		},
		{
			name:   "gap between tiers",
			mutate: func(ts []tier.Tier) []tier.Tier { ts[1].MaxPoints = ptr(900); return ts },
			errIs:  errs.ErrInvalidTierCatalog,
		},
		{
			name:   "overlap between tiers",
			mutate: func(ts []tier.Tier) []tier.Tier { ts[2].MaxPoints = ptr(6000); return ts },
			errIs:  errs.ErrInvalidTierCatalog,
		},
		{
			name:   "lowest tier not at zero",
			mutate: func(ts []tier.Tier) []tier.Tier { ts[1].MinPoints = 10; return ts },
			errIs:  errs.ErrInvalidTierCatalog,
		},
		{
			name:   "top tier bounded",
			mutate: func(ts []tier.Tier) []tier.Tier { ts[0].MaxPoints = ptr(10000); return ts },
			errIs:  errs.ErrInvalidTierCatalog,
		},
		{
			name:   "duplicate key",
			mutate: func(ts []tier.Tier) []tier.Tier { ts[0].Key = "silver"; return ts },
			errIs:  errs.ErrInvalidTierCatalog,
		},
		{
			name:   "negative multiplier",
			mutate: func(ts []tier.Tier) []tier.Tier { ts[0].EarningMultiplier = decimal.NewFromInt(-1); return ts },
			errIs:  errs.ErrInvalidTierCatalog,
		},
		{
			name:   "shared sort order",
			mutate: func(ts []tier.Tier) []tier.Tier { ts[0].SortOrder = 2; return ts },
			errIs:  errs.ErrInvalidTierCatalog,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tier.NewCatalog(tc.mutate(standardTiers()))
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEvaluate(t *testing.T) {
	c, err := tier.NewCatalog(standardTiers())
	require.NoError(t, err)

	tests := []struct {
		points int64
		want   string
	}{
		{0, "bronze"},
		{999, "bronze"},
		{1000, "silver"},
		{4999, "silver"},
		{5000, "gold"},
		{1_000_000, "gold"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Evaluate(tt.points, decimal.Zero).Key, "points=%d", tt.points)
	}

	t.Run("monotonic in points and spend", func(t *testing.T) {
		prev := -1
		for p := int64(0); p <= 6000; p += 250 {
			r, _ := c.Rank(c.Evaluate(p, decimal.NewFromInt(p)).Key)
			assert.GreaterOrEqual(t, r, prev)
			prev = r
		}
	})

	t.Run("spend threshold gates promotion", func(t *testing.T) {
		ts := standardTiers()
		ts[2].MinSpend = decimal.NewFromInt(500)
		gated, err := tier.NewCatalog(ts)
		require.NoError(t, err)
		assert.Equal(t, "bronze", gated.Evaluate(1500, decimal.NewFromInt(499)).Key)
		assert.Equal(t, "silver", gated.Evaluate(1500, decimal.NewFromInt(500)).Key)
	})
}

func TestDecide(t *testing.T) {
	c, err := tier.NewCatalog(standardTiers())
	require.NoError(t, err)

	t.Run("promotion", func(t *testing.T) {
		d := c.Decide("bronze", 1000, decimal.Zero, false)
		assert.True(t, d.Changed)
		assert.Equal(t, "silver", d.Tier.Key)
		assert.Equal(t, "bronze", d.Previous)
	})

	t.Run("unchanged is a no-op", func(t *testing.T) {
		d := c.Decide("silver", 1200, decimal.Zero, false)
		assert.False(t, d.Changed)
		assert.Equal(t, "silver", d.Tier.Key)
	})

	t.Run("demotion blocked by default", func(t *testing.T) {
		d := c.Decide("gold", 1200, decimal.Zero, false)
		assert.False(t, d.Changed)
		assert.Equal(t, "gold", d.Tier.Key)
	})

	t.Run("demotion when allowed", func(t *testing.T) {
		d := c.Decide("gold", 1200, decimal.Zero, true)
		assert.True(t, d.Changed)
		assert.Equal(t, "silver", d.Tier.Key)
	})

	t.Run("unknown stored tier is replaced", func(t *testing.T) {
		d := c.Decide("platinum", 0, decimal.Zero, false)
		assert.True(t, d.Changed)
		assert.Equal(t, "bronze", d.Tier.Key)
	})
}

func TestMeets(t *testing.T) {
	c, err := tier.NewCatalog(standardTiers())
	require.NoError(t, err)

	ok, err := c.Meets("gold", "silver")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Meets("silver", "silver")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Meets("bronze", "silver")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Meets("gold", "diamond")
	assert.ErrorIs(t, err, errs.ErrTierNotFound)
}
