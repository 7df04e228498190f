package badge_test

import (
	"testing"

	"github.com/scamtrace/scamtrace/internal/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const supply = 1_000_000_000

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		holding  float64
		wantTier string
		wantNext string
	}{
		{
			name:     "zero holding gets fallback tier",
			holding:  0,
			wantTier: "Shrimp",
			wantNext: "Bull",
		},
		{
			name:     "below first threshold",
			holding:  99_999, // 0.0099999%
			wantTier: "Shrimp",
			wantNext: "Bull",
		},
		{
			name:     "exactly at threshold qualifies",
			holding:  100_000, // exactly 0.01%
			wantTier: "Bull",
			wantNext: "Lion",
		},
		{
			name:     "between thresholds",
			holding:  600_000, // 0.06%
			wantTier: "Lion",
			wantNext: "King Cobra",
		},
		{
			name:     "exactly at top threshold",
			holding:  25_000_000, // exactly 2.5%
			wantTier: "Blue Whale",
		},
		{
			name:     "above top threshold",
			holding:  100_000_000,
			wantTier: "Blue Whale",
		},
		{
			name:     "negative holding clamped to zero",
			holding:  -500,
			wantTier: "Shrimp",
			wantNext: "Bull",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info, err := badge.Calculate(tt.holding, supply, badge.DefaultTiers)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, info.Tier.Name)

			if tt.wantNext == "" {
				assert.Nil(t, info.Next)
			} else {
				require.NotNil(t, info.Next)
				assert.Equal(t, tt.wantNext, info.Next.Name)
				assert.Positive(t, info.Next.Remaining)
				assert.InDelta(t, info.Next.MinHolding-max(tt.holding, 0), info.Next.Remaining, 1e-9)
			}
		})
	}
}

func TestCalculateThresholdFields(t *testing.T) {
	t.Parallel()

	info, err := badge.Calculate(600_000, supply, badge.DefaultTiers)
	require.NoError(t, err)

	// The reported percent and holding are the matched tier's threshold,
	// not the holder's actual values.
	assert.InDelta(t, 0.05, info.PercentOfSupply, 1e-9)
	assert.InDelta(t, 500_000, info.MinHolding, 1e-9)
}

func TestCalculateMonotonic(t *testing.T) {
	t.Parallel()

	tierRank := func(name string) int {
		for i, tier := range badge.DefaultTiers {
			if tier.Name == name {
				return i
			}
		}
		t.Fatalf("unknown tier %q", name)
		return -1
	}

	prev := -1
	for _, holding := range []float64{0, 50_000, 100_000, 500_000, 1_000_000, 5_000_000, 10_000_000, 25_000_000, 50_000_000} {
		info, err := badge.Calculate(holding, supply, badge.DefaultTiers)
		require.NoError(t, err)

		rank := tierRank(info.Tier.Name)
		assert.GreaterOrEqual(t, rank, prev, "tier rank dropped at holding %v", holding)
		prev = rank
	}
}

func TestCalculateInvalidInputs(t *testing.T) {
	t.Parallel()

	t.Run("non-positive supply", func(t *testing.T) {
		t.Parallel()

		_, err := badge.Calculate(100, 0, badge.DefaultTiers)
		require.ErrorIs(t, err, badge.ErrInvalidSupply)

		_, err = badge.Calculate(100, -1, badge.DefaultTiers)
		require.ErrorIs(t, err, badge.ErrInvalidSupply)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		_, err := badge.Calculate(100, supply, nil)
		require.ErrorIs(t, err, badge.ErrEmptyTable)
	})

	t.Run("single tier table", func(t *testing.T) {
		t.Parallel()

		info, err := badge.Calculate(100, supply, []badge.Tier{{Name: "Only", MinPercent: 0}})
		require.NoError(t, err)
		assert.Equal(t, "Only", info.Tier.Name)
		assert.Nil(t, info.Next)
	})
}

func TestCalculateWithCredit(t *testing.T) {
	t.Parallel()

	const rate = 1000

	t.Run("credit substitutes for holding", func(t *testing.T) {
		t.Parallel()

		withCredit, err := badge.CalculateWithCredit(0, 100, rate, supply, badge.DefaultTiers)
		require.NoError(t, err)

		direct, err := badge.Calculate(100_000, supply, badge.DefaultTiers)
		require.NoError(t, err)

		assert.Equal(t, direct, withCredit)
	})

	t.Run("larger of holding and credit wins, not the sum", func(t *testing.T) {
		t.Parallel()

		withCredit, err := badge.CalculateWithCredit(500, 100, rate, supply, badge.DefaultTiers)
		require.NoError(t, err)

		// max(500, 100*1000) = 100_000, not 100_500.
		direct, err := badge.Calculate(100_000, supply, badge.DefaultTiers)
		require.NoError(t, err)
		assert.Equal(t, direct, withCredit)

		summed, err := badge.Calculate(100_500, supply, badge.DefaultTiers)
		require.NoError(t, err)
		assert.Equal(t, summed.Tier, withCredit.Tier)
		require.NotNil(t, summed.Next)
		require.NotNil(t, withCredit.Next)
		assert.NotEqual(t, summed.Next.Remaining, withCredit.Next.Remaining)
	})

	t.Run("holding wins when credit is smaller", func(t *testing.T) {
		t.Parallel()

		withCredit, err := badge.CalculateWithCredit(1_000_000, 100, rate, supply, badge.DefaultTiers)
		require.NoError(t, err)

		direct, err := badge.Calculate(1_000_000, supply, badge.DefaultTiers)
		require.NoError(t, err)
		assert.Equal(t, direct, withCredit)
	})

	t.Run("absent inputs count as zero", func(t *testing.T) {
		t.Parallel()

		info, err := badge.CalculateWithCredit(-1, -1, rate, supply, badge.DefaultTiers)
		require.NoError(t, err)
		assert.Equal(t, "Shrimp", info.Tier.Name)
	})
}

func TestValidateTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tiers   []badge.Tier
		wantErr error
	}{
		{
			name:    "default table is valid",
			tiers:   badge.DefaultTiers,
			wantErr: nil,
		},
		{
			name:    "empty",
			tiers:   nil,
			wantErr: badge.ErrEmptyTable,
		},
		{
			name:    "missing zero tier",
			tiers:   []badge.Tier{{Name: "Bull", MinPercent: 0.01}},
			wantErr: badge.ErrNoZeroTier,
		},
		{
			name: "duplicate threshold",
			tiers: []badge.Tier{
				{Name: "Shrimp", MinPercent: 0},
				{Name: "Bull", MinPercent: 0.01},
				{Name: "Lion", MinPercent: 0.01},
			},
			wantErr: badge.ErrUnsortedTable,
		},
		{
			name: "out of order",
			tiers: []badge.Tier{
				{Name: "Shrimp", MinPercent: 0},
				{Name: "Lion", MinPercent: 0.05},
				{Name: "Bull", MinPercent: 0.01},
			},
			wantErr: badge.ErrUnsortedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := badge.ValidateTiers(tt.tiers)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
