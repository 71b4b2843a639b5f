package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"nextup/internal/core"
	"nextup/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	RegisterUser   = "POST /users/register"
	LoginUser      = "POST /users/login"
	GetCurrentUser = "GET /users/me"
	GetAllTodos    = "GET /todos/"
	GetMyTodos     = "GET /todos/me/"
	CreateTodo     = "POST /todos/"
	GetTodo        = "GET /todos/{id}/"
	UpdateTodo     = "PUT /todos/{id}/"
	DeleteTodo     = "DELETE /todos/{id}/"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          TodoService
}

func NewTodoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service TodoService) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
	}
}

func (h *TodoHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	// the status line is already written, logging is all that is left
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *TodoHandler) requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

// currentUser runs the authorization gate. On failure it writes the one
// generic unauthenticated response and reports false.
func (h *TodoHandler) currentUser(w http.ResponseWriter, r *http.Request, route, requestId string) (core.UserRecord, bool) {
	user, err := h.service.Authorize(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   core.ErrUnauthenticated.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Infow("request rejected as unauthenticated",
			"handler", route,
			"request_id", requestId)
		return core.UserRecord{}, false
	}

	return user, true
}

// todoID parses the {id} path segment. Unparsable ids behave like records
// that do not exist.
func (h *TodoHandler) todoID(w http.ResponseWriter, r *http.Request, route, requestId string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "no todo found with that id",
		}, http.StatusNotFound,
			requestId)
		h.logs.Infow("invalid todo id",
			"id", r.PathValue("id"),
			"handler", route,
			"request_id", requestId)
		return 0, false
	}

	return uint(id), true
}
