package services

import (
	"context"
	"strings"
	"time"

	"github.com/Handsol/nbc-final-project/models"
	"github.com/Handsol/nbc-final-project/storage"
)

// TodoService là tầng nghiệp vụ cho Todo: validate dữ liệu,
// kiểm tra quyền sở hữu và merge cập nhật từng phần
type TodoService struct {
	store storage.TodoStore
}

func NewTodoService(store storage.TodoStore) *TodoService {
	return &TodoService{store: store}
}

// List trả về tất cả Todos, mới nhất trước. Không cần đăng nhập.
func (s *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.store.ListTodos(ctx)
}

// Get trả về một Todo theo ID. Không cần đăng nhập.
func (s *TodoService) Get(ctx context.Context, id string) (models.Todo, error) {
	return s.store.GetTodo(ctx, id)
}

// Create tạo Todo mới cho chủ session. Server tự gán id, createdAt và userId.
func (s *TodoService) Create(ctx context.Context, session *models.Session, req models.CreateTodoRequest) (models.Todo, error) {
	if !session.Authenticated() {
		return models.Todo{}, ErrUnauthenticated
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return models.Todo{}, invalidInput("title and content are required")
	}

	id, err := generateUniqueID(ctx, func(ctx context.Context, id string) error {
		_, err := s.store.GetTodo(ctx, id)
		return err
	})
	if err != nil {
		return models.Todo{}, err
	}

	now := time.Now().UTC()
	todo := models.Todo{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    session.UserID,
	}
	if err := s.store.InsertTodo(ctx, todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// Update merge các field có mặt trong payload vào bản ghi hiện tại.
// Chỉ chủ sở hữu mới được sửa; id, userId, createdAt không bao giờ đổi.
func (s *TodoService) Update(ctx context.Context, session *models.Session, id string, req models.UpdateTodoRequest) (models.Todo, error) {
	if !session.Authenticated() {
		return models.Todo{}, ErrUnauthenticated
	}

	todo, err := s.store.GetTodo(ctx, id)
	if err != nil {
		return models.Todo{}, err
	}
	if err := Authorize(session, todo.UserID, ActionMutate); err != nil {
		return models.Todo{}, err
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Content != nil {
		todo.Content = *req.Content
	}
	if req.IsDone != nil {
		todo.IsDone = *req.IsDone
	}
	todo.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateTodo(ctx, todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// Delete xóa vĩnh viễn một Todo của chủ session
func (s *TodoService) Delete(ctx context.Context, session *models.Session, id string) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}

	todo, err := s.store.GetTodo(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(session, todo.UserID, ActionDelete); err != nil {
		return err
	}

	return s.store.DeleteTodo(ctx, id)
}
