package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Client talks to the Google Places web service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a places client. baseURL carries the provider prefix
// up to and including /maps/api.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// accessibleRadiusMeters is the nearby-search radius for accessible
// attractions.
const accessibleRadiusMeters = 50000

type detailsResponse struct {
	Result struct {
		Name    string `json:"name"`
		Reviews []struct {
			Text string `json:"text"`
		} `json:"reviews"`
	} `json:"result"`
	Status string `json:"status"`
}

// Details fetches a place's name and review texts.
func (c *Client) Details(ctx context.Context, placeID string) (string, []string, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "name,reviews")
	q.Set("key", c.apiKey)

	var decoded detailsResponse
	if err := c.get(ctx, "/place/details/json", q, &decoded); err != nil {
		return "", nil, err
	}
	if err := checkStatus(decoded.Status); err != nil {
		return "", nil, err
	}

	reviews := make([]string, 0, len(decoded.Result.Reviews))
	for _, rev := range decoded.Result.Reviews {
		reviews = append(reviews, rev.Text)
	}
	return decoded.Result.Name, reviews, nil
}

type nearbyResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry struct {
			Location types.LatLng `json:"location"`
		} `json:"geometry"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
	} `json:"results"`
	Status string `json:"status"`
}

// NearbyAccessible lists wheelchair accessible tourist attractions within
// 50 km of the coordinates.
func (c *Client) NearbyAccessible(ctx context.Context, lat, lon float64) ([]types.AccessiblePlace, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%v, %v", lat, lon))
	q.Set("radius", fmt.Sprintf("%d", accessibleRadiusMeters))
	q.Set("type", "tourist_attraction")
	q.Set("keyword", "wheelchair accessible")
	q.Set("key", c.apiKey)

	var decoded nearbyResponse
	if err := c.get(ctx, "/place/nearbysearch/json", q, &decoded); err != nil {
		return nil, err
	}
	if err := checkStatus(decoded.Status); err != nil {
		return nil, err
	}

	places := make([]types.AccessiblePlace, 0, len(decoded.Results))
	for _, result := range decoded.Results {
		places = append(places, types.AccessiblePlace{
			Name:         result.Name,
			Address:      result.Vicinity,
			Location:     result.Geometry.Location,
			Rating:       result.Rating,
			TotalRatings: result.UserRatingsTotal,
		})
	}
	return places, nil
}

// checkStatus rejects provider-level failures that arrive with HTTP 200.
// ZERO_RESULTS is a valid empty answer, not a failure.
func checkStatus(status string) error {
	if status != "OK" && status != "ZERO_RESULTS" {
		return fmt.Errorf("places API returned status %q", status)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("places API returned status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}
