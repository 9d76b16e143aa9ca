package extractor

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/whytorch/travel-planner-api/internal/api"
	"github.com/whytorch/travel-planner-api/internal/types"
)

// maxUploadBytes caps itinerary uploads at 16 MiB.
const maxUploadBytes = 16 << 20

// Handler exposes itinerary document extraction over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates the extraction handler.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Extract handles POST /itinerary/extract. The document arrives as the
// multipart field "file" and is staged in a temp file for parsing.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ExtractorHandler").Start(r.Context(), "Extract", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary/extract"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ExtractItinerary"))

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		l.WarnContext(ctx, "Missing upload", slog.Any("error", err))
		span.SetStatus(codes.Error, "missing upload")
		api.ErrorResponse(w, r, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "itinerary-*"+filepath.Ext(header.Filename))
	if err != nil {
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to stage upload")
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to stage upload")
		return
	}
	tmp.Close()

	extracted, err := h.service.Extract(ctx, tmp.Name())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction failed")
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrValidation) {
			status = http.StatusBadRequest
		}
		l.ErrorContext(ctx, "Itinerary extraction failed", slog.Any("error", err))
		api.ErrorResponse(w, r, status, err.Error())
		return
	}

	l.InfoContext(ctx, "Itinerary document extracted", slog.String("filename", header.Filename))
	span.SetStatus(codes.Ok, "document extracted")
	api.WriteJSONResponse(w, r, http.StatusOK, extracted)
}
