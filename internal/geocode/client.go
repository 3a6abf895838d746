// Package geocode resolves coordinates to a country name through a
// geocode.xyz-style reverse geocoding endpoint.
//
// The lookup is best-effort: callers are expected to swallow failures and
// leave the country selection unset.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrNoCountry is returned when the response parses but carries no country
// field, which the endpoint uses for throttled or unresolvable queries.
var ErrNoCountry = errors.New("no country in geocoder response")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the given base URL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type response struct {
	Country string `json:"country"`
}

// CountryFor returns the country name for the given coordinates.
func (c *Client) CountryFor(ctx context.Context, lat, lon float64) (string, error) {
	url := fmt.Sprintf("%s/%s,%s?geoit=json",
		c.baseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("geocoder returned %s: %s", resp.Status, string(b))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if r.Country == "" {
		return "", ErrNoCountry
	}
	return r.Country, nil
}

// ParseCoordinates splits a "lat,lon" string into its numeric parts.
func ParseCoordinates(s string) (lat, lon float64, err error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("coordinates must be \"lat,lon\", got %q", s)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %w", err)
	}
	return lat, lon, nil
}
