// Package handler: chat_handler.go implementa POST /api/mitra/chat, a entrada
// do assistente Mitra.
//
// Request:
//
//	Content-Type: application/json
//	Body: {"message": "How do I get a loan?", "user_id": "...", "region": "...", "dvi": 0}
//
// Only "message" is read; the user snapshot always comes from the store.
//
// Response (200 OK), with an X-Mitra-Reply-Id header:
//
//	{"reply": "...", "suggestions": ["..."], "source": "rule|remote|fallback|error", "detail": "..."}
//
// The handler is thin: schema validation, snapshot lookup, then ChatService.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/chat/port"
	"github.com/memetrics/memetrics-bfa-go/internal/chat/service"
	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/validation"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// tracer é o tracer OpenTelemetry para o módulo chat/handler.
var tracer = otel.Tracer("chat/handler")

// ReplyIDHeader carries the per-reply ID that also appears in the logs.
const ReplyIDHeader = "X-Mitra-Reply-Id"

const maxChatBodyBytes = 64 << 10

// ChatHandler retorna o http.HandlerFunc para a rota POST /api/mitra/chat.
func ChatHandler(chatSvc *service.ChatService, users port.SnapshotProvider, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/mitra/chat")
		defer span.End()

		replyID := uuid.NewString()
		span.SetAttributes(attribute.String("mitra.reply_id", replyID))
		log := observability.LoggerFromContext(ctx, logger).With(zap.String("reply_id", replyID))
		ctx = observability.WithLogger(ctx, log)

		body, err := io.ReadAll(io.LimitReader(r.Body, maxChatBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validation.Chat.ValidateBytes(body); err != nil {
			handleServiceError(w, err, log)
			return
		}

		var req domain.ChatRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: expected {\"message\": \"your message\"}")
			return
		}

		user, err := users.Snapshot(ctx)
		if err != nil {
			handleServiceError(w, err, log)
			return
		}
		span.SetAttributes(attribute.String("user.id", user.ID))

		resp, err := chatSvc.GenerateReply(ctx, req.Message, user)
		if err != nil {
			handleServiceError(w, err, log)
			return
		}

		w.Header().Set(ReplyIDHeader, replyID)
		writeJSON(w, http.StatusOK, resp)
	}
}

// ============================================================
// Helpers: funções utilitárias do chat handler
// ============================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleServiceError mapeia erros de domínio para HTTP status codes.
// Remote failures never reach here; the service turns them into a fallback reply.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var validationErr *maindomain.ErrValidation
	if errors.As(err, &validationErr) {
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Error("unexpected error in chat handler", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
