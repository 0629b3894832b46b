package verify

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
)

// Handler wires the JSON verification endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	rateLimit func(http.Handler) http.Handler
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	limiter := httprate.Limit(5, time.Minute, httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return "ip:" + r.RemoteAddr, nil
		}
		return "ip:" + host, nil
	}))
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		rateLimit: limiter,
	}
}

// MountRoutes registers verification routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/request", h.handleRequest)
		r.Post("/confirm", h.handleConfirm)
	})
}

type requestPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type confirmPayload struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) {
	var payload requestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email address is required")
		return
	}

	reference, err := h.service.RequestCode(r.Context(), payload.Email)
	if err != nil {
		h.logger.Error("request code", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "could not send verification code")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{
		"status":    "sent",
		"reference": reference,
	})
}

func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var payload confirmPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email and six-digit code are required")
		return
	}

	err := h.service.Confirm(r.Context(), payload.Email, payload.Code)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
	case errors.Is(err, ErrNoCode):
		writeError(w, http.StatusBadRequest, "no active code for this address, request a new one")
	case errors.Is(err, ErrCodeMismatch):
		writeError(w, http.StatusUnauthorized, "incorrect code")
	case errors.Is(err, ErrLockedOut):
		writeError(w, http.StatusTooManyRequests, "too many attempts, request a new code")
	default:
		h.logger.Error("confirm code", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "verification failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
