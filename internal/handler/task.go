package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard-go/internal/crypto"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/service"
)

// TaskHandler handles HTTP requests for task operations. Every handler
// extracts the caller identity itself — the route-level gate only checks
// header shape.
type TaskHandler struct {
	service *service.TaskService
	tokens  *crypto.TokenService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService, tokens *crypto.TokenService) *TaskHandler {
	return &TaskHandler{service: svc, tokens: tokens}
}

// identity recovers the caller's user ID from the Authorization header,
// writing a 401 and returning false on any auth failure.
func (h *TaskHandler) identity(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := h.tokens.IdentityFromHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		return 0, false
	}
	return userID, true
}

// taskID parses the {id} URL parameter. An unparseable id is treated the
// same as a missing task.
func taskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, service.ErrTaskNotFound
	}
	return id, nil
}

// HandleListTasks handles GET /api/tasks requests.
func (h *TaskHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	tasks, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.TaskListResponse{Tasks: tasks, Success: true})
}

// HandleCreateTask handles POST /api/tasks requests.
func (h *TaskHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	task, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.TaskResponse{Task: *task, Success: true})
}

// HandleUpdateTask handles PUT /api/tasks/{id} requests.
func (h *TaskHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, err := taskID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrTaskNotFound.Error()))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	task, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.TaskResponse{Task: *task, Success: true})
}

// HandleDeleteTask handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	id, err := taskID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrTaskNotFound.Error()))
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "task deleted", Success: true})
}
