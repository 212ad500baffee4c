package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Handsol/nbc-final-project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreTodoCRUD(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetTodo(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	todo := models.Todo{ID: "t1", Title: "a", Content: "b", CreatedAt: time.Now(), UserID: "u1"}
	require.NoError(t, store.InsertTodo(ctx, todo))

	got, err := store.GetTodo(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, todo.Title, got.Title)

	got.Title = "changed"
	require.NoError(t, store.UpdateTodo(ctx, got))
	got, err = store.GetTodo(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)

	assert.ErrorIs(t, store.UpdateTodo(ctx, models.Todo{ID: "missing"}), ErrNotFound)

	require.NoError(t, store.DeleteTodo(ctx, "t1"))
	assert.ErrorIs(t, store.DeleteTodo(ctx, "t1"), ErrNotFound)
}

func TestMemoryStoreHabitCRUD(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	habit := models.Habit{ID: "h1", Title: "Exercise", Repeats: "[]", CreatedAt: time.Now(), UserID: "u1"}
	require.NoError(t, store.InsertHabit(ctx, habit))

	got, err := store.GetHabit(ctx, "h1")
	require.NoError(t, err)
	assert.Nil(t, got.LastCompleted)

	now := time.Now().UTC()
	got.LastCompleted = &now
	require.NoError(t, store.UpdateHabit(ctx, got))

	got, err = store.GetHabit(ctx, "h1")
	require.NoError(t, err)
	require.NotNil(t, got.LastCompleted)

	require.NoError(t, store.DeleteHabit(ctx, "h1"))
	_, err = store.GetHabit(ctx, "h1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.InsertHabit(ctx, models.Habit{
			ID:        id,
			Title:     id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	habits, err := store.ListHabits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 3)
	assert.Equal(t, "c", habits[0].ID)
	assert.Equal(t, "a", habits[2].ID)
}

func TestMemoryStoreUserLookups(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := models.User{ID: "u1", Username: "alice", Provider: "google", ProviderID: "sub-123"}
	require.NoError(t, store.InsertUser(ctx, user))

	byID, err := store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", byName.ID)

	byProvider, err := store.GetUserByProvider(ctx, "google", "sub-123")
	require.NoError(t, err)
	assert.Equal(t, "u1", byProvider.ID)

	_, err = store.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetUserByProvider(ctx, "google", "other")
	assert.ErrorIs(t, err, ErrNotFound)
}
