// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
	"github.com/carterperez-dev/photo-portfolio/internal/metrics"
	"github.com/carterperez-dev/photo-portfolio/internal/middleware"
)

type Handler struct {
	dispatcher *mediator.Dispatcher
	validator  *validator.Validate
}

func NewHandler(dispatcher *mediator.Dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		validator:  core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req, "login") {
		return
	}

	resp, err := mediator.Send[LoginUserCommand, AuthResponse](r.Context(), h.dispatcher, LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		core.InternalServerError(w, err, MsgLoginError)
		return
	}

	h.writeAuth(w, "login", resp, http.StatusOK)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req, "register") {
		return
	}

	resp, err := mediator.Send[RegisterUserCommand, AuthResponse](r.Context(), h.dispatcher, RegisterUserCommand{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		core.InternalServerError(w, err, MsgRegistrationError)
		return
	}

	h.writeAuth(w, "register", resp, http.StatusCreated)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := mediator.Send[GetCurrentUserQuery, UserResponse](
		r.Context(),
		h.dispatcher,
		GetCurrentUserQuery{UserID: middleware.GetUserID(r.Context())},
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUnauthorized):
			core.Unauthorized(w, "")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "User")
		default:
			core.RecordSpanError(r.Context(), err)
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, user)
}

// decode reads and validates the body. Failures are answered with an
// unsuccessful AuthResponse so clients see one response shape.
func (h *Handler) decode(
	w http.ResponseWriter,
	r *http.Request,
	dst any,
	operation string,
) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeAuth(w, operation, failed(FailureInvalidInput, "invalid request body"), 0)
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.writeAuth(w, operation, failed(FailureInvalidInput, core.FormatValidationError(err)), 0)
		return false
	}

	return true
}

func (h *Handler) writeAuth(
	w http.ResponseWriter,
	operation string,
	resp AuthResponse,
	successStatus int,
) {
	status, outcome := successStatus, "success"

	if !resp.Success {
		switch resp.Failure {
		case FailureInvalidCredentials:
			status, outcome = http.StatusUnauthorized, "invalid_credentials"
		case FailureConflict:
			status, outcome = http.StatusConflict, "conflict"
		case FailureInvalidInput:
			status, outcome = http.StatusBadRequest, "invalid_input"
		default:
			status, outcome = http.StatusInternalServerError, "error"
		}
	}

	metrics.AuthAttemptsTotal.WithLabelValues(operation, outcome).Inc()
	core.JSON(w, status, resp)
}
