package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/dreed/taskhub/internal/auth"
	"github.com/dreed/taskhub/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// UniqueEmail generates a collision-free email for test users.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

// UserBuilder creates test users with sensible defaults.
type UserBuilder struct {
	email    string
	name     string
	password string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    UniqueEmail("user"),
		name:     "Test User",
		password: "testpassword1",
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build persists the user with a real stored hash and returns it together
// with the plaintext password used.
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashed, err := auth.NewHasher().Hash(b.password)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := &domain.User{
		ID:           b.email,
		Email:        b.email,
		Name:         b.name,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(user).Error)

	return user, b.password
}

// CreateTask persists a task owned by the given user.
func CreateTask(t *testing.T, db *gorm.DB, userID, title string) *domain.Task {
	t.Helper()

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(task).Error)

	return task
}
