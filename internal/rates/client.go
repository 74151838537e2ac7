// Package rates fetches live currency exchange rates for the converter
// widget. The upstream is open.er-api.com, which needs no API key.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const baseURL = "https://open.er-api.com/v6/latest/"

// Rate is one conversion quote returned to the views.
type Rate struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	FetchedAt string  `json:"fetchedAt"` // RFC 3339
}

// Client fetches exchange rates over HTTP. The zero value is not usable;
// construct with NewClient.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient returns a Client with a request timeout suited to a widget
// that renders a spinner while waiting.
func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// NewClientWithBaseURL is NewClient pointed at a different upstream.
// Tests use it with an httptest server.
func NewClientWithBaseURL(url string) *Client {
	c := NewClient()
	c.baseURL = url
	return c
}

// Latest returns the current rate from one currency to another.
// Currency codes are upstream-defined (e.g. "SGD", "TWD").
func (c *Client) Latest(ctx context.Context, from, to string) (Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+from, nil)
	if err != nil {
		return Rate{}, fmt.Errorf("rates.Client.Latest: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Rate{}, fmt.Errorf("rates.Client.Latest: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rate{}, fmt.Errorf("rates.Client.Latest: upstream returned %s", resp.Status)
	}

	var body struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Rate{}, fmt.Errorf("rates.Client.Latest: decode: %v", err)
	}
	rate, found := body.Rates[to]
	if body.Result != "success" || !found {
		return Rate{}, fmt.Errorf("rates.Client.Latest: no rate from %q to %q", from, to)
	}

	return Rate{
		From:      from,
		To:        to,
		Rate:      rate,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
