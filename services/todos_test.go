package services

import (
	"context"
	"testing"
	"time"

	"github.com/Handsol/nbc-final-project/models"
	"github.com/Handsol/nbc-final-project/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodoService() (*TodoService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewTodoService(store), store
}

func sessionFor(userID string) *models.Session {
	return &models.Session{UserID: userID}
}

func TestTodoCreateRequiresAuth(t *testing.T) {
	svc, _ := newTodoService()

	_, err := svc.Create(context.Background(), nil, models.CreateTodoRequest{Title: "a", Content: "b"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// session thiếu danh tính cũng bị coi là chưa đăng nhập
	_, err = svc.Create(context.Background(), &models.Session{}, models.CreateTodoRequest{Title: "a", Content: "b"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTodoCreateValidation(t *testing.T) {
	svc, _ := newTodoService()
	session := sessionFor("user-1")

	tests := []struct {
		name string
		req  models.CreateTodoRequest
	}{
		{"missing title", models.CreateTodoRequest{Content: "b"}},
		{"empty title", models.CreateTodoRequest{Title: "", Content: "b"}},
		{"whitespace title", models.CreateTodoRequest{Title: "   ", Content: "b"}},
		{"missing content", models.CreateTodoRequest{Title: "a"}},
		{"whitespace content", models.CreateTodoRequest{Title: "a", Content: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), session, tt.req)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestTodoCreateAssignsServerFields(t *testing.T) {
	svc, _ := newTodoService()

	todo, err := svc.Create(context.Background(), sessionFor("user-1"), models.CreateTodoRequest{
		Title:   "Buy milk",
		Content: "2 liters",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "user-1", todo.UserID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "2 liters", todo.Content)
	assert.False(t, todo.IsDone)
	assert.False(t, todo.CreatedAt.IsZero())
}

func TestTodoUpdatePartialMerge(t *testing.T) {
	svc, _ := newTodoService()
	owner := sessionFor("user-1")

	created, err := svc.Create(context.Background(), owner, models.CreateTodoRequest{Title: "Buy milk", Content: "2 liters"})
	require.NoError(t, err)

	isDone := true
	updated, err := svc.Update(context.Background(), owner, created.ID, models.UpdateTodoRequest{IsDone: &isDone})
	require.NoError(t, err)

	// Chỉ field có mặt trong payload thay đổi
	assert.True(t, updated.IsDone)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestTodoUpdateOwnership(t *testing.T) {
	svc, _ := newTodoService()
	owner := sessionFor("user-1")

	created, err := svc.Create(context.Background(), owner, models.CreateTodoRequest{Title: "a", Content: "b"})
	require.NoError(t, err)

	title := "hijacked"
	_, err = svc.Update(context.Background(), sessionFor("user-2"), created.ID, models.UpdateTodoRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(context.Background(), nil, created.ID, models.UpdateTodoRequest{Title: &title})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	updated, err := svc.Update(context.Background(), owner, created.ID, models.UpdateTodoRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "hijacked", updated.Title)
}

func TestTodoDeleteIsTerminal(t *testing.T) {
	svc, _ := newTodoService()
	owner := sessionFor("user-1")

	created, err := svc.Create(context.Background(), owner, models.CreateTodoRequest{Title: "a", Content: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	title := "x"
	_, err = svc.Update(context.Background(), owner, created.ID, models.UpdateTodoRequest{Title: &title})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = svc.Delete(context.Background(), owner, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTodoDeleteOwnership(t *testing.T) {
	svc, _ := newTodoService()
	owner := sessionFor("user-1")

	created, err := svc.Create(context.Background(), owner, models.CreateTodoRequest{Title: "a", Content: "b"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), sessionFor("user-2"), created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), nil, created.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Bản ghi vẫn còn sau các lần xóa bị từ chối
	_, err = svc.Get(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestTodoListOrder(t *testing.T) {
	svc, store := newTodoService()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		err := store.InsertTodo(context.Background(), models.Todo{
			ID:        id,
			Title:     id,
			Content:   id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UserID:    "user-1",
		})
		require.NoError(t, err)
	}

	todos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 3)

	// Mới nhất trước
	assert.Equal(t, "third", todos[0].ID)
	assert.Equal(t, "second", todos[1].ID)
	assert.Equal(t, "first", todos[2].ID)
}
