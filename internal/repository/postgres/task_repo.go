package postgres

import (
	"context"

	"github.com/dreed/taskhub/internal/domain"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *taskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByUserID(ctx context.Context, userID string, status domain.TaskStatus) ([]*domain.Task, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	switch status {
	case domain.TaskStatusCompleted:
		query = query.Where("completed = ?", true)
	case domain.TaskStatusPending:
		query = query.Where("completed = ?", false)
	}

	tasks := []*domain.Task{}
	err := query.Order("id ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}
