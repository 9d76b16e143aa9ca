package photolocation

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/whytorch/travel-planner-api/internal/api"
	"github.com/whytorch/travel-planner-api/internal/types"
)

// Handler exposes photo location extraction over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates the photo location handler.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Locate handles POST /photos/locate.
func (h *Handler) Locate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PhotoLocationHandler").Start(r.Context(), "Locate", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/photos/locate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "LocatePhoto"))

	var req types.ImageURLRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		span.SetStatus(codes.Error, "missing image URL")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Locate(ctx, req.ImageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "photo location failed")
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrValidation) {
			status = http.StatusBadRequest
		}
		l.ErrorContext(ctx, "Photo location failed", slog.Any("error", err))
		api.ErrorResponse(w, r, status, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "photo located")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
