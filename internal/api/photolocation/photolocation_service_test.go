package photolocation

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whytorch/travel-planner-api/internal/types"
)

type stubGeocoder struct {
	address string
	err     error
}

func (s *stubGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	return s.address, s.err
}

func TestLocateImageWithoutMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A payload with no EXIF block at all.
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	svc := NewService(&stubGeocoder{}, slog.New(slog.DiscardHandler))

	resp, err := svc.Locate(context.Background(), server.URL+"/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "No location data available", resp.Address)
	assert.Zero(t, resp.Latitude)
	assert.Zero(t, resp.Longitude)
}

func TestLocateDownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewService(&stubGeocoder{}, slog.New(slog.DiscardHandler))

	_, err := svc.Locate(context.Background(), server.URL+"/missing.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValidation)
}
