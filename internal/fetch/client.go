package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

// Client fetches the catalog from a vitrined catalog service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the service at addr (host:port).
func NewClient(addr string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = catalog.DefaultFetchTimeout
	}
	return &Client{
		baseURL: "http://" + addr,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchItems(ctx context.Context) ([]catalog.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/items", nil)
	if err != nil {
		return nil, catalog.UnknownError()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Cancellation must surface as ctx.Err so the store can tell a
		// superseded fetch from a real transport failure.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, catalog.NetworkError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, catalog.NetworkError(fmt.Sprintf("catalog service returned %d", resp.StatusCode))
	}

	var body struct {
		Items []catalog.Item `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, catalog.DecodingError()
	}
	return body.Items, nil
}
