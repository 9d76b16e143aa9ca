package places

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

// Handler exposes accessible place search over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates the accessible places handler.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type accessibleRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type accessibleResponse struct {
	Status string                  `json:"status"`
	Data   []types.AccessiblePlace `json:"data"`
}

// Accessible handles POST /places/accessible.
func (h *Handler) Accessible(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlacesHandler").Start(r.Context(), "Accessible", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/accessible"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "AccessiblePlaces"))

	var req accessibleRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	found, err := h.service.AccessibleNearby(ctx, req.Lat, req.Lon)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "accessible search failed")
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrValidation) {
			status = http.StatusBadRequest
		}
		l.ErrorContext(ctx, "Accessible place search failed", slog.Any("error", err))
		api.ErrorResponse(w, r, status, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "places found")
	api.WriteJSONResponse(w, r, http.StatusOK, accessibleResponse{Status: "success", Data: found})
}
