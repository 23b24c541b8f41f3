package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/dreed/taskhub/internal/domain"
	"github.com/dreed/taskhub/internal/repository"
	"gorm.io/gorm"
)

type TaskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

type TaskInput struct {
	Title       string
	Description *string
}

// List returns the user's tasks, optionally filtered by completion status.
// An empty status means no filter.
func (s *TaskService) List(ctx context.Context, userID string, status domain.TaskStatus) ([]*domain.Task, error) {
	if status == "" {
		status = domain.TaskStatusAll
	}
	if !status.Valid() {
		return nil, newValidationError("Status must be 'all', 'pending', or 'completed'")
	}
	return s.taskRepo.ListByUserID(ctx, userID, status)
}

func (s *TaskService) Create(ctx context.Context, userID string, input TaskInput) (*domain.Task, error) {
	// Length limits count characters, not bytes.
	if titleLen := utf8.RuneCountInString(input.Title); titleLen < 1 || titleLen > 200 {
		return nil, newValidationError("Title must be between 1 and 200 characters")
	}
	if input.Description != nil && utf8.RuneCountInString(*input.Description) > 5000 {
		return nil, newValidationError("Description must be less than 5000 characters")
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, userID string, taskID uint) (*domain.Task, error) {
	return s.getOwned(ctx, userID, taskID)
}

// Update applies a partial update: an empty title keeps the existing one,
// a nil description leaves the existing description in place.
func (s *TaskService) Update(ctx context.Context, userID string, taskID uint, input TaskInput) (*domain.Task, error) {
	task, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" && utf8.RuneCountInString(input.Title) > 200 {
		return nil, newValidationError("Title must be between 1 and 200 characters")
	}
	if input.Description != nil && utf8.RuneCountInString(*input.Description) > 5000 {
		return nil, newValidationError("Description must be less than 5000 characters")
	}

	if input.Title != "" {
		task.Title = input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and returns the deleted row.
func (s *TaskService) Delete(ctx context.Context, userID string, taskID uint) (*domain.Task, error) {
	task, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// ToggleComplete flips the completion flag.
func (s *TaskService) ToggleComplete(ctx context.Context, userID string, taskID uint) (*domain.Task, error) {
	task, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// getOwned re-reads the row on every call: existence is confirmed first
// (ErrTaskNotFound), then ownership (ErrTaskForbidden). Ownership is never
// cached or inferred from the token.
func (s *TaskService) getOwned(ctx context.Context, userID string, taskID uint) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskForbidden
	}
	return task, nil
}
