package services

import (
	"context"
	"strings"
	"time"

	"github.com/Handsol/nbc-final-project/models"
	"github.com/Handsol/nbc-final-project/storage"
)

// defaultRepeats là giá trị mặc định của lịch lặp: danh sách rỗng đã mã hóa.
// Tầng này chỉ lưu và trả lại chuỗi, không parse.
const defaultRepeats = "[]"

// HabitService là tầng nghiệp vụ cho Habit, cùng khuôn với TodoService
type HabitService struct {
	store storage.HabitStore
}

func NewHabitService(store storage.HabitStore) *HabitService {
	return &HabitService{store: store}
}

// List trả về tất cả Habits, mới nhất trước. Không cần đăng nhập.
func (s *HabitService) List(ctx context.Context) ([]models.Habit, error) {
	return s.store.ListHabits(ctx)
}

// Get trả về một Habit theo ID. Không cần đăng nhập.
func (s *HabitService) Get(ctx context.Context, id string) (models.Habit, error) {
	return s.store.GetHabit(ctx, id)
}

// Create tạo Habit mới cho chủ session. Server tự gán id, createdAt và userId.
func (s *HabitService) Create(ctx context.Context, session *models.Session, req models.CreateHabitRequest) (models.Habit, error) {
	if !session.Authenticated() {
		return models.Habit{}, ErrUnauthenticated
	}
	if strings.TrimSpace(req.Title) == "" {
		return models.Habit{}, invalidInput("title is required")
	}

	id, err := generateUniqueID(ctx, func(ctx context.Context, id string) error {
		_, err := s.store.GetHabit(ctx, id)
		return err
	})
	if err != nil {
		return models.Habit{}, err
	}

	repeats := req.Repeats
	if strings.TrimSpace(repeats) == "" {
		repeats = defaultRepeats
	}

	habit := models.Habit{
		ID:         id,
		Title:      req.Title,
		Notes:      req.Notes,
		Categories: req.Categories,
		Repeats:    repeats,
		CreatedAt:  time.Now().UTC(),
		UserID:     session.UserID,
	}
	if err := s.store.InsertHabit(ctx, habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Update merge các field có mặt trong payload vào bản ghi hiện tại.
// lastCompleted nhận chuỗi RFC3339; chuỗi hỏng là lỗi của client.
// Chỉ chủ sở hữu mới được sửa; id, userId, createdAt không bao giờ đổi.
func (s *HabitService) Update(ctx context.Context, session *models.Session, id string, req models.UpdateHabitRequest) (models.Habit, error) {
	if !session.Authenticated() {
		return models.Habit{}, ErrUnauthenticated
	}

	habit, err := s.store.GetHabit(ctx, id)
	if err != nil {
		return models.Habit{}, err
	}
	if err := Authorize(session, habit.UserID, ActionMutate); err != nil {
		return models.Habit{}, err
	}

	if req.Title != nil {
		habit.Title = *req.Title
	}
	if req.Notes != nil {
		habit.Notes = *req.Notes
	}
	if req.Categories != nil {
		habit.Categories = *req.Categories
	}
	if req.Repeats != nil {
		habit.Repeats = *req.Repeats
	}
	if req.LastCompleted != nil {
		lastCompleted, err := time.Parse(time.RFC3339, *req.LastCompleted)
		if err != nil {
			return models.Habit{}, invalidInput("lastCompleted must be an RFC3339 timestamp")
		}
		habit.LastCompleted = &lastCompleted
	}

	if err := s.store.UpdateHabit(ctx, habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Delete xóa vĩnh viễn một Habit của chủ session
func (s *HabitService) Delete(ctx context.Context, session *models.Session, id string) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}

	habit, err := s.store.GetHabit(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(session, habit.UserID, ActionDelete); err != nil {
		return err
	}

	return s.store.DeleteHabit(ctx, id)
}
