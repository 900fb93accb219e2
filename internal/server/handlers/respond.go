package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/lmsdesk/pkg/api"
)

// responder пишет ответы в формате конверта платформы
type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return responder{logger: logger}
}

// sendData отправляет успешный ответ {success: true, data, pagination, message}
func (h responder) sendData(w http.ResponseWriter, data any, pagination *api.Pagination, message string, statusCode int) {
	h.sendJSON(w, api.Response[any]{
		Success:    true,
		Data:       data,
		Pagination: pagination,
		Message:    message,
	}, statusCode)
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// sendError отправляет ответ {success: false, message}
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Success: false,
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}

// WriteError пишет ответ с ошибкой вне handler'ов (middleware)
func WriteError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	newResponder(logger).sendError(w, message, statusCode)
}
