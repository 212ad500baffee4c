package models

import "time"

// Habit là cấu trúc dữ liệu của một thói quen.
// Repeats là chuỗi lịch lặp đã mã hóa, tầng này không parse nó.
type Habit struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Notes         string     `json:"notes"`
	Categories    string     `json:"categories"`
	Repeats       string     `json:"repeats"`
	LastCompleted *time.Time `json:"lastCompleted"`
	CreatedAt     time.Time  `json:"createdAt"`
	UserID        string     `json:"userId"`
}

// CreateHabitRequest là payload tạo mới một Habit
type CreateHabitRequest struct {
	Title      string `json:"title"`
	Notes      string `json:"notes"`
	Categories string `json:"categories"`
	Repeats    string `json:"repeats"`
}

// UpdateHabitRequest là payload cập nhật một phần (PATCH).
// LastCompleted nhận chuỗi RFC3339, parse ở tầng service.
type UpdateHabitRequest struct {
	Title         *string `json:"title"`
	Notes         *string `json:"notes"`
	Categories    *string `json:"categories"`
	Repeats       *string `json:"repeats"`
	LastCompleted *string `json:"lastCompleted"`
}
