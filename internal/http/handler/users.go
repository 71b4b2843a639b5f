package handler

import (
	"errors"
	"fmt"
	"net/http"

	"nextup/internal/core"
	"nextup/internal/http/payload"
)

func (h *TodoHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not register user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusUnprocessableEntity,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterUser,
			"request_id", requestId)
		return
	}

	user, token, err := h.service.Register(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not register user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) || errors.Is(err, core.ErrEmailTaken) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", RegisterUser,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"user":         user,
		"access_token": token,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *TodoHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusUnprocessableEntity,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", LoginUser,
			"request_id", requestId)
		return
	}

	token, err := h.service.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			// unknown user and wrong password produce this same response
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", LoginUser,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	user, ok := h.currentUser(w, r, GetCurrentUser, requestId)
	if !ok {
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}
