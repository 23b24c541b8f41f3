package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dreed/taskhub/internal/api/middleware"
	"github.com/dreed/taskhub/internal/domain"
	"github.com/dreed/taskhub/internal/service"
	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type TaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	status := domain.TaskStatus(r.URL.Query().Get("status"))

	tasks, err := h.taskService.List(r.Context(), userID, status)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Delete(r.Context(), userID, taskID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleComplete(r.Context(), userID, taskID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// authorizeOwner enforces that the path's user segment equals the token
// subject. The check runs on every task operation, reads included, and is
// never skipped once a token has been validated.
func (h *TaskHandler) authorizeOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	subject, ok := middleware.GetSubject(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}

	pathUserID := chi.URLParam(r, "userID")
	if pathUserID != subject {
		http.Error(w, "Not authorized to access these tasks", http.StatusForbidden)
		return "", false
	}

	return pathUserID, true
}

func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "taskID"), 10, 32)
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

func (h *TaskHandler) writeError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Message, http.StatusBadRequest)
	case errors.Is(err, domain.ErrTaskNotFound):
		http.Error(w, "Task not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrTaskForbidden):
		http.Error(w, "Not authorized to access this task", http.StatusForbidden)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
