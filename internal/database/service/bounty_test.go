package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/scamtrace/scamtrace/internal/database/service"
	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStorage = errors.New("storage unavailable")

// fakeScammerStore is a spy implementation of service.ScammerStore.
type fakeScammerStore struct {
	mu             sync.Mutex
	totals         map[string]float64
	existsCalls    int
	incrementCalls int
	incrementErr   error
}

func newFakeScammerStore(ids ...string) *fakeScammerStore {
	totals := make(map[string]float64)
	for _, id := range ids {
		totals[id] = 0
	}

	return &fakeScammerStore{totals: totals}
}

func (f *fakeScammerStore) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.existsCalls++
	_, ok := f.totals[id]

	return ok, nil
}

func (f *fakeScammerStore) IncrementBounty(_ context.Context, id string, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.incrementCalls++
	if f.incrementErr != nil {
		return f.incrementErr
	}

	f.totals[id] += amount

	return nil
}

func (f *fakeScammerStore) total(id string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.totals[id]
}

// fakeContributionStore is a spy implementation of service.ContributionStore
// keeping ledger rows newest-first like the real ranged query does.
type fakeContributionStore struct {
	mu          sync.Mutex
	rows        map[string][]*types.BountyContribution
	insertCalls int
	countCalls  int
	listCalls   int
	insertErr   error
}

func newFakeContributionStore() *fakeContributionStore {
	return &fakeContributionStore{rows: make(map[string][]*types.BountyContribution)}
}

func (f *fakeContributionStore) InsertContribution(_ context.Context, contribution *types.BountyContribution) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}

	contribution.ID = fmt.Sprintf("contribution-%d", f.insertCalls)
	contribution.CreatedAt = time.Now()
	f.rows[contribution.ScammerID] = append(
		[]*types.BountyContribution{contribution}, f.rows[contribution.ScammerID]...)

	return nil
}

func (f *fakeContributionStore) CountContributions(_ context.Context, scammerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.countCalls++

	return len(f.rows[scammerID]), nil
}

func (f *fakeContributionStore) ListContributions(
	_ context.Context, scammerID string, offset, limit int,
) ([]*types.BountyContribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++

	rows := f.rows[scammerID]
	if offset >= len(rows) {
		return []*types.BountyContribution{}, nil
	}

	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}

	out := make([]*types.BountyContribution, end-offset)
	copy(out, rows[offset:end])

	return out, nil
}

func setupBounty(t *testing.T, ids ...string) (*service.BountyService, *fakeScammerStore, *fakeContributionStore) {
	t.Helper()

	scammers := newFakeScammerStore(ids...)
	contributions := newFakeContributionStore()
	svc := service.NewBounty(scammers, contributions, 5*time.Minute, 10, zap.NewNop())

	return svc, scammers, contributions
}

func TestAddContributionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		scammerID   string
		contributor string
		amount      float64
		wantErr     error
	}{
		{"zero amount", "s1", "alice", 0, types.ErrInvalidAmount},
		{"negative amount", "s1", "alice", -5, types.ErrInvalidAmount},
		{"empty contributor", "s1", "", 10, types.ErrInvalidContributor},
		{"empty scammer ID", "", "alice", 10, types.ErrInvalidScammerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, scammers, contributions := setupBounty(t, "s1")

			_, err := svc.AddContribution(t.Context(), tt.scammerID, tt.contributor, tt.amount, "")
			require.ErrorIs(t, err, tt.wantErr)

			// Rejected before any storage call.
			assert.Equal(t, 0, scammers.existsCalls)
			assert.Equal(t, 0, scammers.incrementCalls)
			assert.Equal(t, 0, contributions.insertCalls)
		})
	}
}

func TestAddContributionUnknownTarget(t *testing.T) {
	t.Parallel()

	svc, scammers, contributions := setupBounty(t, "s1")

	_, err := svc.AddContribution(t.Context(), "missing", "alice", 25, "")
	require.ErrorIs(t, err, types.ErrScammerNotFound)

	assert.Equal(t, 0, contributions.insertCalls)
	assert.Equal(t, 0, scammers.incrementCalls)
}

func TestAddContributionUpdatesAggregate(t *testing.T) {
	t.Parallel()

	svc, scammers, _ := setupBounty(t, "s1")

	result, err := svc.AddContribution(t.Context(), "s1", "alice", 25, "get him")
	require.NoError(t, err)
	require.NotNil(t, result.Contribution)
	assert.False(t, result.AggregateStale)
	assert.NotEmpty(t, result.Contribution.ID)
	assert.InDelta(t, 25, scammers.total("s1"), 1e-9)

	_, err = svc.AddContribution(t.Context(), "s1", "bob", 17.5, "")
	require.NoError(t, err)
	assert.InDelta(t, 42.5, scammers.total("s1"), 1e-9)
}

func TestAddContributionInsertFailure(t *testing.T) {
	t.Parallel()

	svc, scammers, contributions := setupBounty(t, "s1")
	contributions.insertErr = errStorage

	_, err := svc.AddContribution(t.Context(), "s1", "alice", 25, "")
	require.ErrorIs(t, err, errStorage)

	// Aborted: the aggregate must not move when the ledger insert failed.
	assert.Equal(t, 0, scammers.incrementCalls)
	assert.InDelta(t, 0, scammers.total("s1"), 1e-9)
}

func TestAddContributionAggregateFailureIsPartialSuccess(t *testing.T) {
	t.Parallel()

	svc, scammers, contributions := setupBounty(t, "s1")
	scammers.incrementErr = errStorage

	result, err := svc.AddContribution(t.Context(), "s1", "alice", 25, "")
	require.NoError(t, err)
	require.NotNil(t, result.Contribution)
	assert.True(t, result.AggregateStale)

	// The ledger row was durably recorded even though the total is stale.
	assert.Equal(t, 1, contributions.insertCalls)
	items, total, err := svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, items, 1)
}

func TestAddContributionConcurrentTotals(t *testing.T) {
	t.Parallel()

	svc, scammers, _ := setupBounty(t, "s1")

	p := pool.New().WithErrors()
	for i := range 20 {
		contributor := fmt.Sprintf("contributor-%d", i)
		p.Go(func() error {
			_, err := svc.AddContribution(context.Background(), "s1", contributor, 1, "")
			return err
		})
	}

	require.NoError(t, p.Wait())
	assert.InDelta(t, 20, scammers.total("s1"), 1e-9)
}

func TestListContributionsOrdering(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupBounty(t, "s1")

	for _, contributor := range []string{"alice", "bob", "carol"} {
		_, err := svc.AddContribution(t.Context(), "s1", contributor, 10, "")
		require.NoError(t, err)
	}

	items, total, err := svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)

	// Newest-first is part of the contract.
	assert.Equal(t, "carol", items[0].ContributorID)
	assert.Equal(t, "bob", items[1].ContributorID)
	assert.Equal(t, "alice", items[2].ContributorID)
}

func TestListContributionsCacheHit(t *testing.T) {
	t.Parallel()

	svc, _, contributions := setupBounty(t, "s1")

	_, err := svc.AddContribution(t.Context(), "s1", "alice", 10, "")
	require.NoError(t, err)

	first, total, err := svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	countAfterFirst := contributions.countCalls
	listAfterFirst := contributions.listCalls

	second, total, err := svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, first, second)

	// Second identical call within the TTL must not touch storage.
	assert.Equal(t, countAfterFirst, contributions.countCalls)
	assert.Equal(t, listAfterFirst, contributions.listCalls)
}

func TestListContributionsCacheExpiry(t *testing.T) {
	t.Parallel()

	scammers := newFakeScammerStore("s1")
	contributions := newFakeContributionStore()
	svc := service.NewBounty(scammers, contributions, 50*time.Millisecond, 10, zap.NewNop())

	_, err := svc.AddContribution(t.Context(), "s1", "alice", 10, "")
	require.NoError(t, err)

	_, _, err = svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)

	listAfterFirst := contributions.listCalls
	time.Sleep(100 * time.Millisecond)

	_, _, err = svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, listAfterFirst+1, contributions.listCalls)
}

func TestListContributionsInvalidatedByContribution(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupBounty(t, "s1")

	_, err := svc.AddContribution(t.Context(), "s1", "alice", 10, "")
	require.NoError(t, err)

	items, total, err := svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, items, 1)

	// A new contribution must not leave the old page visible.
	_, err = svc.AddContribution(t.Context(), "s1", "bob", 5, "")
	require.NoError(t, err)

	items, total, err = svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "bob", items[0].ContributorID)
}

func TestListContributionsDeepPageSkipsCache(t *testing.T) {
	t.Parallel()

	svc, _, contributions := setupBounty(t, "s1")

	for i := range 15 {
		_, err := svc.AddContribution(t.Context(), "s1", fmt.Sprintf("contributor-%d", i), 1, "")
		require.NoError(t, err)
	}

	// Page 1 populates the cache with ten of fifteen rows.
	firstPage, total, err := svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, firstPage, 10)

	// Page 2 lies outside the cached prefix and must hit storage,
	// without repopulating the cache.
	listBefore := contributions.listCalls

	secondPage, total, err := svc.ListContributions(t.Context(), "s1", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, secondPage, 5)
	assert.Equal(t, listBefore+1, contributions.listCalls)

	// Page 1 is still served from the cache afterwards.
	listAfter := contributions.listCalls
	_, _, err = svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, listAfter, contributions.listCalls)
}

func TestListContributionsClearCache(t *testing.T) {
	t.Parallel()

	svc, _, contributions := setupBounty(t, "s1")

	_, err := svc.AddContribution(t.Context(), "s1", "alice", 10, "")
	require.NoError(t, err)

	_, _, err = svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)

	svc.ClearCache()

	listBefore := contributions.listCalls
	_, _, err = svc.ListContributions(t.Context(), "s1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, listBefore+1, contributions.listCalls)
}
