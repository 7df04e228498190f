package balance

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// HTTPSource fetches balances from an indexer's JSON endpoint. The endpoint
// takes the wallet address as a query parameter and responds with
// {"balance": <tokens>}.
type HTTPSource struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewHTTPSource creates a balance source backed by the given endpoint URL.
func NewHTTPSource(endpoint string, logger *zap.Logger) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.Named("balance_source"),
	}
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

// FetchBalance queries the indexer for a wallet's current token balance.
func (s *HTTPSource) FetchBalance(ctx context.Context, wallet string) (float64, error) {
	reqURL := fmt.Sprintf("%s?address=%s", s.endpoint, url.QueryEscape(wallet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build balance request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch balance: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("balance endpoint returned status %d", resp.StatusCode)
	}

	var body balanceResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode balance response: %w", err)
	}

	s.logger.Debug("Fetched wallet balance",
		zap.String("wallet", wallet),
		zap.Float64("balance", body.Balance))

	return body.Balance, nil
}
