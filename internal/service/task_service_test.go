package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dreed/taskhub/internal/domain"
	"github.com/dreed/taskhub/internal/service"
	"github.com/dreed/taskhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()
	user, _ := testutil.NewUserBuilder().Build(t, app.DB)

	desc := "some details"
	task, err := app.Services.Task.Create(ctx, user.ID, service.TaskInput{
		Title:       "buy milk",
		Description: &desc,
	})
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.Equal(t, user.ID, task.UserID)
	assert.Equal(t, "buy milk", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "some details", *task.Description)
	assert.False(t, task.Completed)
}

func TestTaskService_CreateValidation(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()
	user, _ := testutil.NewUserBuilder().Build(t, app.DB)

	longDesc := strings.Repeat("d", 5001)

	tests := []struct {
		name  string
		input service.TaskInput
	}{
		{"empty title", service.TaskInput{Title: ""}},
		{"title too long", service.TaskInput{Title: strings.Repeat("t", 201)}},
		{"description too long", service.TaskInput{Title: "ok", Description: &longDesc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.Services.Task.Create(ctx, user.ID, tt.input)

			var ve *service.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestTaskService_CreateMultibyteLimits(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()
	user, _ := testutil.NewUserBuilder().Build(t, app.DB)

	// Title and description limits count characters, not bytes: 150
	// two-byte runes are 300 bytes but still within the 200-character cap.
	title := strings.Repeat("é", 150)
	desc := strings.Repeat("é", 5000)
	task, err := app.Services.Task.Create(ctx, user.ID, service.TaskInput{
		Title:       title,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, title, task.Title)

	_, err = app.Services.Task.Create(ctx, user.ID, service.TaskInput{
		Title: strings.Repeat("é", 201),
	})
	var ve *service.ValidationError
	assert.ErrorAs(t, err, &ve)

	longDesc := strings.Repeat("é", 5001)
	_, err = app.Services.Task.Create(ctx, user.ID, service.TaskInput{
		Title:       "ok",
		Description: &longDesc,
	})
	assert.ErrorAs(t, err, &ve)
}

func TestTaskService_GetOwnership(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()

	ann, _ := testutil.NewUserBuilder().WithEmail("alice@x.com").Build(t, app.DB)
	bob, _ := testutil.NewUserBuilder().WithEmail("bob@x.com").Build(t, app.DB)
	task := testutil.CreateTask(t, app.DB, ann.ID, "alice's task")

	t.Run("owner can read", func(t *testing.T) {
		got, err := app.Services.Task.Get(ctx, ann.ID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		_, err := app.Services.Task.Get(ctx, bob.ID, task.ID)
		assert.ErrorIs(t, err, domain.ErrTaskForbidden)
	})

	t.Run("absent task is not found", func(t *testing.T) {
		_, err := app.Services.Task.Get(ctx, ann.ID, 99999)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestTaskService_Update(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()
	user, _ := testutil.NewUserBuilder().Build(t, app.DB)
	task := testutil.CreateTask(t, app.DB, user.ID, "original title")

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		desc := "now with details"
		updated, err := app.Services.Task.Update(ctx, user.ID, task.ID, service.TaskInput{
			Description: &desc,
		})
		require.NoError(t, err)
		assert.Equal(t, "original title", updated.Title)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "now with details", *updated.Description)
	})

	t.Run("title change", func(t *testing.T) {
		updated, err := app.Services.Task.Update(ctx, user.ID, task.ID, service.TaskInput{
			Title: "new title",
		})
		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := app.Services.Task.Update(ctx, user.ID, task.ID, service.TaskInput{
			Title: strings.Repeat("t", 201),
		})
		var ve *service.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestTaskService_Delete(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()
	user, _ := testutil.NewUserBuilder().Build(t, app.DB)
	task := testutil.CreateTask(t, app.DB, user.ID, "to be deleted")

	deleted, err := app.Services.Task.Delete(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID, "delete returns the removed row")

	_, err = app.Services.Task.Get(ctx, user.ID, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_ToggleComplete(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()
	user, _ := testutil.NewUserBuilder().Build(t, app.DB)
	task := testutil.CreateTask(t, app.DB, user.ID, "toggle me")

	toggled, err := app.Services.Task.ToggleComplete(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = app.Services.Task.ToggleComplete(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed, "toggling twice restores the flag")
}

func TestTaskService_List(t *testing.T) {
	app := testutil.NewTestApp(t)
	ctx := context.Background()
	user, _ := testutil.NewUserBuilder().Build(t, app.DB)
	other, _ := testutil.NewUserBuilder().Build(t, app.DB)

	open := testutil.CreateTask(t, app.DB, user.ID, "open task")
	done := testutil.CreateTask(t, app.DB, user.ID, "done task")
	testutil.CreateTask(t, app.DB, other.ID, "someone else's task")

	_, err := app.Services.Task.ToggleComplete(ctx, user.ID, done.ID)
	require.NoError(t, err)

	t.Run("default lists everything owned", func(t *testing.T) {
		tasks, err := app.Services.Task.List(ctx, user.ID, "")
		require.NoError(t, err)
		require.Len(t, tasks, 2)
	})

	t.Run("pending filter", func(t *testing.T) {
		tasks, err := app.Services.Task.List(ctx, user.ID, domain.TaskStatusPending)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, open.ID, tasks[0].ID)
	})

	t.Run("completed filter", func(t *testing.T) {
		tasks, err := app.Services.Task.List(ctx, user.ID, domain.TaskStatusCompleted)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, done.ID, tasks[0].ID)
	})

	t.Run("invalid filter", func(t *testing.T) {
		_, err := app.Services.Task.List(ctx, user.ID, "bogus")
		var ve *service.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		lonely, _ := testutil.NewUserBuilder().Build(t, app.DB)
		tasks, err := app.Services.Task.List(ctx, lonely.ID, domain.TaskStatusAll)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}
