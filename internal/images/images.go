// Package images resolves one image URL per slide: the Unsplash search API
// when a key is configured, a deterministic placeholder otherwise. Lookup
// never fails; any problem falls back to the placeholder.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.unsplash.com"

type Client struct {
	// BaseURL overrides the Unsplash endpoint, used by tests.
	BaseURL string

	key   string
	httpc *http.Client
}

func NewClient(key string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		key:     key,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// HasCredential reports whether the client can query Unsplash at all. The
// capability is fixed at construction.
func (c *Client) HasCredential() bool { return c.key != "" }

// Lookup returns an image URL for the query. The seed parameterizes the
// placeholder so each slide gets a distinct but reproducible image.
func (c *Client) Lookup(ctx context.Context, query string, seed int) string {
	if c.HasCredential() {
		imageURL, err := c.search(ctx, query)
		if err == nil {
			return imageURL
		}
		log.Printf("Image lookup for %q failed: %v (using placeholder)", query, err)
	}
	return Placeholder(seed)
}

// Placeholder returns the credential-free fallback URL for a seed.
func Placeholder(seed int) string {
	return fmt.Sprintf("https://picsum.photos/800/600?random=%d", seed)
}

func (c *Client) search(ctx context.Context, query string) (string, error) {
	endpoint := c.BaseURL + "/search/photos"
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.key)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Results) == 0 || body.Results[0].URLs.Regular == "" {
		return "", fmt.Errorf("no results for %q", query)
	}
	return body.Results[0].URLs.Regular, nil
}
