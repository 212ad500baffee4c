package storage

import (
	"context"
	"errors"

	"github.com/Handsol/nbc-final-project/models"
)

// ErrNotFound là lỗi chuẩn khi bản ghi không tồn tại (chưa từng có hoặc đã bị xóa)
var ErrNotFound = errors.New("record not found")

// TodoStore là kho lưu trữ Todo
type TodoStore interface {
	ListTodos(ctx context.Context) ([]models.Todo, error)
	GetTodo(ctx context.Context, id string) (models.Todo, error)
	InsertTodo(ctx context.Context, todo models.Todo) error
	UpdateTodo(ctx context.Context, todo models.Todo) error
	DeleteTodo(ctx context.Context, id string) error
}

// HabitStore là kho lưu trữ Habit
type HabitStore interface {
	ListHabits(ctx context.Context) ([]models.Habit, error)
	GetHabit(ctx context.Context, id string) (models.Habit, error)
	InsertHabit(ctx context.Context, habit models.Habit) error
	UpdateHabit(ctx context.Context, habit models.Habit) error
	DeleteHabit(ctx context.Context, id string) error
}

// UserStore là kho lưu trữ tài khoản người dùng
type UserStore interface {
	InsertUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByProvider(ctx context.Context, provider, providerID string) (models.User, error)
}
