package chat

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

// Handler exposes the history chatbot over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates the chat handler.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Chat handles POST /chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "Chat", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Chat"))

	var req types.ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Respond(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "chat failed")
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrValidation) {
			status = http.StatusBadRequest
		}
		l.ErrorContext(ctx, "Chat reply failed", slog.Any("error", err))
		api.ErrorResponse(w, r, status, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "reply generated")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
