package matching

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

// Handler exposes tourist matching over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates the matching handler.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Match handles POST /tourists/match.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("MatchingHandler").Start(r.Context(), "Match", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/tourists/match"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "MatchTourists"))

	var profile types.TouristProfile
	if err := api.DecodeJSONBody(w, r, &profile); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Match(ctx, profile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "matching failed")
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrValidation) {
			status = http.StatusBadRequest
		}
		l.ErrorContext(ctx, "Tourist matching failed", slog.Any("error", err))
		api.ErrorResponse(w, r, status, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "match computed")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
