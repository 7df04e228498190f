package service_test

import (
	"context"
	"testing"

	"github.com/scamtrace/scamtrace/internal/badge"
	"github.com/scamtrace/scamtrace/internal/database/service"
	"github.com/scamtrace/scamtrace/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBalanceProvider struct {
	balances map[string]float64
	err      error
}

func (f *fakeBalanceProvider) GetBalance(_ context.Context, wallet string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}

	return f.balances[wallet], nil
}

type fakeReporterBounties struct {
	totals map[string]float64
	err    error
}

func (f *fakeReporterBounties) TotalBountyByReporter(_ context.Context, reporterID string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}

	return f.totals[reporterID], nil
}

func badgeConfig() *config.Badge {
	return &config.Badge{
		TotalSupply:    1_000_000_000,
		ConversionRate: 1000,
		Tiers:          badge.DefaultTiers,
	}
}

func TestGetBadgeFromHolding(t *testing.T) {
	t.Parallel()

	svc := service.NewBadge(
		&fakeBalanceProvider{balances: map[string]float64{"0xabc": 600_000}},
		&fakeReporterBounties{},
		badgeConfig(),
		zap.NewNop(),
	)

	info, err := svc.GetBadge(t.Context(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "Lion", info.Tier.Name)
}

func TestGetBadgeBountyCreditWins(t *testing.T) {
	t.Parallel()

	// No holding, but 100 raised at rate 1000 is credit for 100k tokens.
	svc := service.NewBadge(
		&fakeBalanceProvider{balances: map[string]float64{}},
		&fakeReporterBounties{totals: map[string]float64{"0xabc": 100}},
		badgeConfig(),
		zap.NewNop(),
	)

	info, err := svc.GetBadge(t.Context(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "Bull", info.Tier.Name)
}

func TestGetBadgeBountyLookupFailureDegrades(t *testing.T) {
	t.Parallel()

	svc := service.NewBadge(
		&fakeBalanceProvider{balances: map[string]float64{"0xabc": 600_000}},
		&fakeReporterBounties{err: errStorage},
		badgeConfig(),
		zap.NewNop(),
	)

	info, err := svc.GetBadge(t.Context(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "Lion", info.Tier.Name)
}

func TestGetBadgeBalanceFailure(t *testing.T) {
	t.Parallel()

	svc := service.NewBadge(
		&fakeBalanceProvider{err: errStorage},
		&fakeReporterBounties{},
		badgeConfig(),
		zap.NewNop(),
	)

	_, err := svc.GetBadge(t.Context(), "0xabc")
	require.ErrorIs(t, err, errStorage)
}
