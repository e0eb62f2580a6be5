package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"mortgage-parser/domain"
	"mortgage-parser/service"
)

// maxRequestBodyBytes caps a calculate request body. A command is one line.
const maxRequestBodyBytes = 64 << 10

type CalculateRequest struct {
	Command string `json:"command"`
}

type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

type MortgageHandler struct {
	service *service.MortgageService
	logger  *slog.Logger
}

func NewMortgageHandler(service *service.MortgageService, logger *slog.Logger) *MortgageHandler {
	return &MortgageHandler{service: service, logger: logger}
}

func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Debug("error decoding request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		http.Error(w, "command is required", http.StatusBadRequest)
		return
	}

	quote, err := h.service.Quote(r.Context(), req.Command)
	if err != nil {
		kind, ok := domain.KindOf(err)
		if !ok {
			h.logger.Error("error calculating mortgage", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Kind: kind.String(), Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, quote)
}

func (h *MortgageHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	quotes, err := h.service.History(limit)
	if err != nil {
		h.logger.Error("error reading quote history", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}

	h.writeJSON(w, http.StatusOK, quotes)
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written success response.
func (h *MortgageHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("error writing response", "error", err)
	}
}
