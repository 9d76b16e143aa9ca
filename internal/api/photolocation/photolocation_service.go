package photolocation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service extracts GPS coordinates from a photo and resolves them to an
// address.
type Service interface {
	Locate(ctx context.Context, imageURL string) (*types.LocationResponse, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger     *slog.Logger
	httpClient *http.Client
	geocoder   ReverseGeocoder
}

// NewService creates a new photo location service instance.
func NewService(geocoder ReverseGeocoder, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		geocoder:   geocoder,
	}
}

// maxImageBytes caps photo downloads at 20 MiB.
const maxImageBytes = 20 << 20

// Locate downloads the image, reads the GPS coordinates from its EXIF
// block and reverse-geocodes them. Photos without location metadata are
// not an error; the response says no location data is available.
func (s *ServiceImpl) Locate(ctx context.Context, imageURL string) (*types.LocationResponse, error) {
	l := s.logger.With(slog.String("image_url", imageURL))

	img, err := s.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrValidation, err)
	}

	x, err := exif.Decode(bytes.NewReader(img))
	if err != nil {
		l.InfoContext(ctx, "Image carries no EXIF metadata", slog.Any("error", err))
		return &types.LocationResponse{Address: "No location data available"}, nil
	}

	lat, lon, err := x.LatLong()
	if err != nil {
		l.InfoContext(ctx, "EXIF metadata has no GPS block", slog.Any("error", err))
		return &types.LocationResponse{Address: "No location data available"}, nil
	}

	address, err := s.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		l.WarnContext(ctx, "Reverse geocoding failed", slog.Any("error", err))
		address = fmt.Sprintf("Error: %s", err)
	}

	return &types.LocationResponse{
		Latitude:  lat,
		Longitude: lon,
		Address:   address,
	}, nil
}

func (s *ServiceImpl) fetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL: %s", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %s", err)
	}
	return body, nil
}
