package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"
)

const defaultBaseURL = "https://maps.googleapis.com"

var (
	// ErrNoResults is returned when the provider has no match for an address.
	ErrNoResults = errors.New("geocode: no results for address")
)

// Address is the component set used to build a lookup query.
type Address struct {
	Address string
	City    string
	State   string
	Zip     int
}

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Resolver resolves a street address to coordinates.
type Resolver interface {
	Resolve(ctx context.Context, addr Address) (Coordinates, error)
}

// Client resolves addresses against the Google Maps geocode API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	store      *Store
}

// NewClient creates a geocode client. store may be nil to disable caching.
func NewClient(apiKey string, store *Store) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		store:      store,
	}
}

// providerResponse mirrors the subset of the provider payload we read.
type providerResponse struct {
	Results []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Resolve performs a single outbound lookup. Provider errors and malformed
// responses propagate; coordinates are never silently defaulted.
func (c *Client) Resolve(ctx context.Context, addr Address) (Coordinates, error) {
	query := buildQuery(addr)

	if c.store != nil {
		if coords, ok := c.store.Get(ctx, query); ok {
			return coords, nil
		}
	}

	params := url.Values{}
	params.Set("address", query)
	params.Set("components", "administrative_area:"+strings.TrimSpace(addr.State))
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/maps/api/geocode/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode: provider returned status %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinates{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	if len(payload.Results) == 0 {
		return Coordinates{}, ErrNoResults
	}

	coords := payload.Results[0].Geometry.Location
	if c.store != nil {
		c.store.Put(ctx, query, coords)
	}
	return coords, nil
}

// buildQuery concatenates whitespace-stripped address components into the
// provider's address parameter.
func buildQuery(addr Address) string {
	return fmt.Sprintf("%s%s%d", stripSpace(addr.Address), stripSpace(addr.City), addr.Zip)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
