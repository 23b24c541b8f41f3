package domain

import "errors"

// Task access errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskForbidden = errors.New("task belongs to another user")
)
