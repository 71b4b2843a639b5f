package handler

import (
	"errors"
	"fmt"
	"net/http"

	"nextup/internal/core"
	"nextup/internal/http/payload"
)

func (h *TodoHandler) HandleGetAllTodos(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	todos, err := h.service.ListTodos(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve todos",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list todos",
			"error", err,
			"handler", GetAllTodos,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TodoSummary{
		"todos": todos,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleGetMyTodos(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	user, ok := h.currentUser(w, r, GetMyTodos, requestId)
	if !ok {
		return
	}

	todos, err := h.service.ListMyTodos(r.Context(), user)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve todos",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list user todos",
			"error", err,
			"handler", GetMyTodos,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TodoRecord{
		"todos": todos,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	user, ok := h.currentUser(w, r, CreateTodo, requestId)
	if !ok {
		return
	}

	var req payload.NewTodoRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create todo",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusUnprocessableEntity,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTodo,
			"request_id", requestId)
		return
	}

	todo, err := h.service.CreateTodo(r.Context(), user, req.ToMessage())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create todo",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to create todo",
			"error", err,
			"handler", CreateTodo,
			"request_id", requestId)
		return
	}

	h.respond(w, todo, http.StatusCreated, requestId)
}

func (h *TodoHandler) HandleGetTodo(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	if _, ok := h.currentUser(w, r, GetTodo, requestId); !ok {
		return
	}

	id, ok := h.todoID(w, r, GetTodo, requestId)
	if !ok {
		return
	}

	todo, err := h.service.GetTodo(r.Context(), id)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve todo",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrTodoNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = "no todo found with that id"
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get todo",
			"error", err,
			"handler", GetTodo,
			"request_id", requestId)
		return
	}

	h.respond(w, todo, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	user, ok := h.currentUser(w, r, UpdateTodo, requestId)
	if !ok {
		return
	}

	id, ok := h.todoID(w, r, UpdateTodo, requestId)
	if !ok {
		return
	}

	var req payload.UpdateTodoRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update todo",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusUnprocessableEntity,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateTodo,
			"request_id", requestId)
		return
	}

	todo, err := h.service.UpdateTodo(r.Context(), id, req.ToPatch(), user)
	if err != nil {
		h.respondTodoMutationError(w, err, "Could not update todo", UpdateTodo, requestId)
		return
	}

	h.respond(w, todo, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	user, ok := h.currentUser(w, r, DeleteTodo, requestId)
	if !ok {
		return
	}

	id, ok := h.todoID(w, r, DeleteTodo, requestId)
	if !ok {
		return
	}

	deletedID, err := h.service.DeleteTodo(r.Context(), id, user)
	if err != nil {
		h.respondTodoMutationError(w, err, "Could not delete todo", DeleteTodo, requestId)
		return
	}

	resp := map[string]uint{
		"id": deletedID,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// respondTodoMutationError maps update/delete failures: a missing record is
// 404, a record owned by someone else is 403.
func (h *TodoHandler) respondTodoMutationError(w http.ResponseWriter, err error, message, route, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrTodoNotFound):
		httpCode = http.StatusNotFound
		resp.Error = "no todo found with that id"
	case errors.Is(err, core.ErrNotOwner):
		httpCode = http.StatusForbidden
		resp.Error = core.ErrNotOwner.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("todo mutation failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}
