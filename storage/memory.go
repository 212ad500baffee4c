package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/Handsol/nbc-final-project/models"
)

// MemoryStore giữ bản ghi trong bộ nhớ, dùng cho test.
// Cài đặt cùng các interface với PostgresStore.
type MemoryStore struct {
	mu     sync.RWMutex
	todos  map[string]models.Todo
	habits map[string]models.Habit
	users  map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos:  map[string]models.Todo{},
		habits: map[string]models.Habit{},
		users:  map[string]models.User{},
	}
}

func (s *MemoryStore) ListTodos(ctx context.Context) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]models.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		todos = append(todos, todo)
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
	return todos, nil
}

func (s *MemoryStore) GetTodo(ctx context.Context, id string) (models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return todo, nil
}

func (s *MemoryStore) InsertTodo(ctx context.Context, todo models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos[todo.ID] = todo
	return nil
}

func (s *MemoryStore) UpdateTodo(ctx context.Context, todo models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[todo.ID]; !ok {
		return ErrNotFound
	}
	s.todos[todo.ID] = todo
	return nil
}

func (s *MemoryStore) DeleteTodo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

func (s *MemoryStore) ListHabits(ctx context.Context) ([]models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	habits := make([]models.Habit, 0, len(s.habits))
	for _, habit := range s.habits {
		habits = append(habits, habit)
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.After(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *MemoryStore) GetHabit(ctx context.Context, id string) (models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	habit, ok := s.habits[id]
	if !ok {
		return models.Habit{}, ErrNotFound
	}
	return habit, nil
}

func (s *MemoryStore) InsertHabit(ctx context.Context, habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.habits[habit.ID] = habit
	return nil
}

func (s *MemoryStore) UpdateHabit(ctx context.Context, habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[habit.ID]; !ok {
		return ErrNotFound
	}
	s.habits[habit.ID] = habit
	return nil
}

func (s *MemoryStore) DeleteHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[id]; !ok {
		return ErrNotFound
	}
	delete(s.habits, id)
	return nil
}

func (s *MemoryStore) InsertUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user
	return nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) GetUserByProvider(ctx context.Context, provider, providerID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Provider == provider && user.ProviderID == providerID {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}
