package photolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// ReverseGeocoder resolves coordinates to a human readable address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// NominatimClient reverse-geocodes through the Nominatim HTTP API. Lookups
// are throttled to one request per second per the service's usage policy
// and cached so repeated photos of the same spot don't hit the network.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *cache.Cache
}

var _ ReverseGeocoder = (*NominatimClient)(nil)

// NewNominatimClient creates the geocoder client.
func NewNominatimClient(baseURL, userAgent string) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		cache:      cache.New(1*time.Hour, 10*time.Minute),
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse returns the nearest address for the coordinates.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	key := fmt.Sprintf("%.6f,%.6f", lat, lon)
	if cached, found := c.cache.Get(key); found {
		return cached.(string), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if decoded.DisplayName == "" {
		return "Address not found for these coordinates", nil
	}

	c.cache.Set(key, decoded.DisplayName, cache.DefaultExpiration)
	return decoded.DisplayName, nil
}
