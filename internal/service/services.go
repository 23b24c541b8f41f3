package service

import (
	"github.com/dreed/taskhub/internal/auth"
	"github.com/dreed/taskhub/internal/config"
	"github.com/dreed/taskhub/internal/repository"
)

type Services struct {
	Auth *AuthService
	Task *TaskService
}

func NewServices(repos *repository.Repositories, tokens *auth.TokenService, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, auth.NewHasher(), tokens, cfg),
		Task: NewTaskService(repos.Task),
	}
}
