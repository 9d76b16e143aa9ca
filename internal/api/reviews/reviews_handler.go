package reviews

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/whytorch/travel-planner-api/internal/api"
)

// Handler exposes review sentiment analysis over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates the reviews handler.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type analyzeRequest struct {
	Places []string `json:"places"`
}

// Analyze handles POST /reviews/analyze.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "Analyze", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/reviews/analyze"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "AnalyzeReviews"))

	var req analyzeRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Places) == 0 {
		span.SetStatus(codes.Error, "no places given")
		api.ErrorResponse(w, r, http.StatusBadRequest, "at least one place ID is required")
		return
	}

	results, err := h.service.Analyze(ctx, req.Places)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		l.ErrorContext(ctx, "Review analysis failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "reviews analyzed")
	if len(results) == 0 {
		api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"message": "No reviews found"})
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, results)
}
