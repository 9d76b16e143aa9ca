package waste

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/whytorch/travel-planner-api/internal/api"
	"github.com/whytorch/travel-planner-api/internal/types"
)

// Handler exposes waste detection over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates the waste detection handler.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Detect handles POST /waste/detect.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WasteHandler").Start(r.Context(), "Detect", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/waste/detect"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "DetectWaste"))

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

	resp, err := h.service.Detect(ctx, req.ImageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "waste detection failed")
		l.ErrorContext(ctx, "Waste detection failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "waste analyzed")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
