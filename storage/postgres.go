package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Handsol/nbc-final-project/models"
)

// PostgresStore cài đặt TodoStore, HabitStore và UserStore trên PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Lấy tất cả Todos, mới nhất trước
func (s *PostgresStore) ListTodos(ctx context.Context) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, content, is_done, created_at, updated_at, user_id FROM todos ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Content, &todo.IsDone,
			&todo.CreatedAt, &todo.UpdatedAt, &todo.UserID); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (s *PostgresStore) GetTodo(ctx context.Context, id string) (models.Todo, error) {
	var todo models.Todo
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, content, is_done, created_at, updated_at, user_id FROM todos WHERE id = $1", id,
	).Scan(&todo.ID, &todo.Title, &todo.Content, &todo.IsDone,
		&todo.CreatedAt, &todo.UpdatedAt, &todo.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrNotFound
	}
	return todo, err
}

func (s *PostgresStore) InsertTodo(ctx context.Context, todo models.Todo) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO todos (id, title, content, is_done, created_at, updated_at, user_id) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		todo.ID, todo.Title, todo.Content, todo.IsDone, todo.CreatedAt, todo.UpdatedAt, todo.UserID,
	)
	return err
}

func (s *PostgresStore) UpdateTodo(ctx context.Context, todo models.Todo) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE todos SET title=$1, content=$2, is_done=$3, updated_at=$4 WHERE id=$5",
		todo.Title, todo.Content, todo.IsDone, todo.UpdatedAt, todo.ID,
	)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteTodo(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// Lấy tất cả Habits, mới nhất trước
func (s *PostgresStore) ListHabits(ctx context.Context) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, notes, categories, repeats, last_completed, created_at, user_id FROM habits ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	return habits, rows.Err()
}

func (s *PostgresStore) GetHabit(ctx context.Context, id string) (models.Habit, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, notes, categories, repeats, last_completed, created_at, user_id FROM habits WHERE id = $1", id,
	)
	habit, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, ErrNotFound
	}
	return habit, err
}

func (s *PostgresStore) InsertHabit(ctx context.Context, habit models.Habit) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO habits (id, title, notes, categories, repeats, last_completed, created_at, user_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		habit.ID, habit.Title, habit.Notes, habit.Categories, habit.Repeats,
		habit.LastCompleted, habit.CreatedAt, habit.UserID,
	)
	return err
}

func (s *PostgresStore) UpdateHabit(ctx context.Context, habit models.Habit) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE habits SET title=$1, notes=$2, categories=$3, repeats=$4, last_completed=$5 WHERE id=$6",
		habit.Title, habit.Notes, habit.Categories, habit.Repeats, habit.LastCompleted, habit.ID,
	)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteHabit(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM habits WHERE id = $1", id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) InsertUser(ctx context.Context, user models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password, provider, provider_id, name, picture) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		user.ID, user.Username, user.Password, user.Provider, user.ProviderID, user.Name, user.Picture,
	)
	return err
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.getUser(ctx, "SELECT id, username, password, provider, provider_id, name, picture FROM users WHERE id = $1", id)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.getUser(ctx, "SELECT id, username, password, provider, provider_id, name, picture FROM users WHERE username = $1", username)
}

func (s *PostgresStore) GetUserByProvider(ctx context.Context, provider, providerID string) (models.User, error) {
	return s.getUser(ctx,
		"SELECT id, username, password, provider, provider_id, name, picture FROM users WHERE provider = $1 AND provider_id = $2",
		provider, providerID)
}

func (s *PostgresStore) getUser(ctx context.Context, query string, args ...any) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.Password, &user.Provider, &user.ProviderID, &user.Name, &user.Picture)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

// scanHabit đọc một dòng habit, last_completed có thể NULL
func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var habit models.Habit
	var lastCompleted sql.NullTime
	err := row.Scan(&habit.ID, &habit.Title, &habit.Notes, &habit.Categories,
		&habit.Repeats, &lastCompleted, &habit.CreatedAt, &habit.UserID)
	if err != nil {
		return models.Habit{}, err
	}
	if lastCompleted.Valid {
		habit.LastCompleted = &lastCompleted.Time
	}
	return habit, nil
}
