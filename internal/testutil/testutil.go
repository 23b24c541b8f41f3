package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/dreed/taskhub/internal/api"
	"github.com/dreed/taskhub/internal/auth"
	"github.com/dreed/taskhub/internal/config"
	"github.com/dreed/taskhub/internal/repository"
	repoPostgres "github.com/dreed/taskhub/internal/repository/postgres"
	"github.com/dreed/taskhub/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory SQLite database with the schema migrated.
// Every call gets a fresh, isolated database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, repoPostgres.Migrate(db), "failed to migrate test database")

	return db
}

// TestConfig returns a configuration suitable for testing.
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Environment:    "test",
		JWTSecret:      "test-jwt-secret-key-for-testing-only",
		TokenTTL:       time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// TestApp wires the full stack against an in-memory database for
// handler-level tests.
type TestApp struct {
	Handler  http.Handler
	DB       *gorm.DB
	Repos    *repository.Repositories
	Services *service.Services
	Tokens   *auth.TokenService
	Cfg      *config.Config
}

func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	cfg := TestConfig()
	db := NewTestDB(t)
	repos := repoPostgres.NewRepositories(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	services := service.NewServices(repos, tokens, cfg)
	handler := api.NewRouter(services, tokens, cfg, zerolog.Nop())

	return &TestApp{
		Handler:  handler,
		DB:       db,
		Repos:    repos,
		Services: services,
		Tokens:   tokens,
		Cfg:      cfg,
	}
}
