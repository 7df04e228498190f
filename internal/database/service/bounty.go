package service

import (
	"context"
	"time"

	"github.com/scamtrace/scamtrace/internal/database/dbretry"
	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/scamtrace/scamtrace/pkg/utils"
	"go.uber.org/zap"
)

// ScammerStore is the subset of scam report storage the bounty ledger needs.
type ScammerStore interface {
	Exists(ctx context.Context, id string) (bool, error)
	IncrementBounty(ctx context.Context, id string, amount float64) error
}

// ContributionStore is the ledger storage the bounty service writes to.
type ContributionStore interface {
	InsertContribution(ctx context.Context, contribution *types.BountyContribution) error
	CountContributions(ctx context.Context, scammerID string) (int, error)
	ListContributions(ctx context.Context, scammerID string, offset, limit int) ([]*types.BountyContribution, error)
}

// ContributionResult reports the outcome of recording a contribution.
// AggregateStale means the ledger row was durably written but the
// denormalized bounty total could not be updated; operators reconcile
// such records from the error log.
type ContributionResult struct {
	Contribution   *types.BountyContribution
	AggregateStale bool
}

// contributionPage is what the list cache holds per scammer: the first
// page's full result set plus the total ledger count at fetch time.
type contributionPage struct {
	items []*types.BountyContribution
	total int
}

// BountyService handles bounty ledger business logic.
type BountyService struct {
	scammers      ScammerStore
	contributions ContributionStore
	cache         *utils.TTLMap[string, contributionPage]
	pageSize      int
	logger        *zap.Logger
}

// NewBounty creates a new bounty service. cacheTTL bounds how stale a cached
// contribution list may be; pageSize is the page size the cache is keyed to.
func NewBounty(
	scammers ScammerStore,
	contributions ContributionStore,
	cacheTTL time.Duration,
	pageSize int,
	logger *zap.Logger,
) *BountyService {
	return &BountyService{
		scammers:      scammers,
		contributions: contributions,
		cache:         utils.NewTTLMap[string, contributionPage](cacheTTL),
		pageSize:      pageSize,
		logger:        logger.Named("bounty_service"),
	}
}

// AddContribution records a contribution toward a scammer's bounty and
// bumps the denormalized total. Validation failures and a missing target
// reject the contribution before any write. Once the ledger insert has
// succeeded the contribution stands: a failed total update degrades to a
// partial success rather than an error.
func (s *BountyService) AddContribution(
	ctx context.Context, scammerID, contributorID string, amount float64, comment string,
) (*ContributionResult, error) {
	if scammerID == "" {
		return nil, types.ErrInvalidScammerID
	}

	if contributorID == "" {
		return nil, types.ErrInvalidContributor
	}

	if amount <= 0 {
		return nil, types.ErrInvalidAmount
	}

	exists, err := s.scammers.Exists(ctx, scammerID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, types.ErrScammerNotFound
	}

	contribution := &types.BountyContribution{
		ScammerID:     scammerID,
		ContributorID: contributorID,
		Amount:        amount,
		Comment:       comment,
	}

	// The insert is never retried: a duplicate ledger row is worse than a
	// reported failure the caller can act on.
	if err := s.contributions.InsertContribution(ctx, contribution); err != nil {
		return nil, err
	}

	result := &ContributionResult{Contribution: contribution}

	// The total update is the one step whose silent failure has a lasting
	// correctness cost, so it gets bounded retry. If it still fails, the
	// contribution stands and the stale total is surfaced for
	// reconciliation instead of being swallowed.
	err = dbretry.NoResult(ctx, func(ctx context.Context) error {
		return s.scammers.IncrementBounty(ctx, scammerID, amount)
	})
	if err != nil {
		result.AggregateStale = true

		s.logger.Error("Contribution recorded but bounty total not updated",
			zap.String("scammerID", scammerID),
			zap.String("contributionID", contribution.ID),
			zap.Float64("amount", amount),
			zap.Error(err))
	}

	s.cache.Delete(scammerID)

	return result, nil
}

// ListContributions returns a page of a scammer's contributions,
// newest-first, along with the total ledger count. The first page at the
// default page size is served from a short-lived cache between
// contributions; staleness within the TTL is accepted by design.
func (s *BountyService) ListContributions(
	ctx context.Context, scammerID string, page, pageSize int,
) ([]*types.BountyContribution, int, error) {
	if scammerID == "" {
		return nil, 0, types.ErrInvalidScammerID
	}

	if page < 1 {
		page = 1
	}

	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	offset := (page - 1) * pageSize

	if cached, ok := s.cache.Get(scammerID); ok {
		// Serve from cache when the requested window lies inside the cached
		// prefix, or when the cache already holds the whole ledger.
		if offset+pageSize <= len(cached.items) || len(cached.items) == cached.total {
			return slicePage(cached.items, offset, pageSize), cached.total, nil
		}
	}

	total, err := s.contributions.CountContributions(ctx, scammerID)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.contributions.ListContributions(ctx, scammerID, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	// Only a full first page repopulates the cache; partial or deep pages
	// would poison the cached prefix.
	if page == 1 && pageSize == s.pageSize {
		s.cache.Set(scammerID, contributionPage{items: items, total: total})
	}

	return items, total, nil
}

// InvalidateCache drops the cached contribution list for one scammer.
func (s *BountyService) InvalidateCache(scammerID string) {
	s.cache.Delete(scammerID)
}

// ClearCache drops all cached contribution lists.
func (s *BountyService) ClearCache() {
	s.cache.Clear()
}

func slicePage(items []*types.BountyContribution, offset, limit int) []*types.BountyContribution {
	if offset >= len(items) {
		return []*types.BountyContribution{}
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
