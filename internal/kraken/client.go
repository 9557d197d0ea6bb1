// Package kraken fetches ticker data from Kraken's public API and
// normalizes it into stable, string-typed snapshots.
package kraken

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivanglie/kraken-mcp/pkg/log"
)

// BaseURL is the root of Kraken's public REST API.
const BaseURL = "https://api.kraken.com/0/public/"

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues ticker requests against the Kraken public API. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	baseURL string
	client  httpClient
}

// New creates a Client bound to the default Kraken API base URL with a 5s
// request timeout.
func New() *Client {
	return NewWithBaseURL(BaseURL, 5*time.Second)
}

// NewWithBaseURL creates a Client bound to the given base URL and timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ticker fetches, validates and normalizes ticker data for one trading
// pair. Kraken uses the legacy ISO code XBT for Bitcoin, so any "BTC" in
// the pair is rewritten to "XBT" for the outbound query only; the returned
// snapshot's Pair always echoes the requested symbol.
func (c *Client) Ticker(ctx context.Context, pair string) (*Snapshot, error) {
	if pair == "" {
		return nil, &UsageError{Argument: "pair"}
	}

	id := uuid.NewString()
	url := c.baseURL + "Ticker?pair=" + strings.ReplaceAll(pair, "BTC", "XBT")
	log.Info(fmt.Sprintf("Requesting ticker for %s [%s]: %s", pair, id, url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error(fmt.Sprintf("Request for %s failed [%s]: %v", pair, id, err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error(fmt.Sprintf("Unexpected status %d for %s [%s]", resp.StatusCode, pair, id))
		return nil, &TransportError{Status: resp.StatusCode}
	}

	var tr TickerResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, &ValidationError{Field: "body", Err: err}
	}

	if len(tr.Error) > 0 {
		log.Error(fmt.Sprintf("Kraken error for %s [%s]: %s", pair, id, tr.Error[0]))
		return nil, &ExchangeError{Message: tr.Error[0]}
	}

	if tr.Result == nil {
		return nil, &ExchangeError{Message: "missing 'result' field"}
	}

	s, err := normalize(pair, tr.Result)
	if err != nil {
		log.Error(fmt.Sprintf("Normalization failed for %s [%s]: %v", pair, id, err))
		return nil, err
	}
	s.RetrievedAt = time.Now().UTC()

	log.Info(fmt.Sprintf("Got ticker for %s [%s]", pair, id))
	return s, nil
}
