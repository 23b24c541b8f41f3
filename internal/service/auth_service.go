package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dreed/taskhub/internal/auth"
	"github.com/dreed/taskhub/internal/config"
	"github.com/dreed/taskhub/internal/domain"
	"github.com/dreed/taskhub/internal/repository"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 8
	// Hard ceiling on the derivation input, counted in UTF-8 bytes.
	maxPasswordBytes = 72
)

// dummyStoredHash is a well-formed salt:digest that matches no real password.
// Login verifies against it when the email does not resolve to a user, so
// both failure paths pay one full derivation and stay indistinguishable by
// timing.
const dummyStoredHash = "6f1d8a3b9c2e4f5a7b8c9d0e1f2a3b4c:9a1c5e7f3b2d4a6c8e0f1a3b5c7d9e2f4a6b8c0d2e4f6a8b0c2d4e6f8a0b1c3d"

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenService
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

// NormalizeEmail canonicalizes an email address for use as a lookup key and
// token subject. Every caller must pass emails through here before touching
// the store, or the same human ends up with divergent identities.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates input, hashes the password and stores a new user keyed
// by its normalized email.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, newValidationError("Name is required")
	}
	// Length limits count characters, not bytes.
	if utf8.RuneCountInString(name) > 100 {
		return nil, newValidationError("Name must be less than 100 characters")
	}

	email := NormalizeEmail(input.Email)
	if utf8.RuneCountInString(email) > 255 {
		return nil, newValidationError("Email must be less than 255 characters")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, newValidationError("Invalid email address")
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		// Email doubles as the primary key.
		ID:           email,
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates the credentials and issues a bearer token whose
// subject is the user's email. Unknown email and wrong password both come
// back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, newValidationError("Email and password are required")
	}
	// Rejected before the store is ever queried. Only the minimum applies
	// here; an over-long password simply fails verification.
	if len(input.Password) < minPasswordLength {
		return nil, newValidationError("Password must be at least 8 characters")
	}

	user, lookupErr := s.userRepo.GetByEmail(ctx, email)

	storedHash := dummyStoredHash
	if lookupErr == nil {
		storedHash = user.PasswordHash
	}

	// Always run the verification so a lookup miss costs the same as a
	// wrong password.
	if !s.hasher.Verify(input.Password, storedHash) || lookupErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return newValidationError("Password must be at least 8 characters")
	}
	if len(password) > maxPasswordBytes {
		return newValidationError("Password exceeds 72 bytes, please use a shorter password")
	}
	return nil
}
