package models

import "time"

// Todo là cấu trúc dữ liệu của một việc cần làm
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsDone    bool      `json:"isDone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    string    `json:"userId"`
}

// CreateTodoRequest là payload tạo mới một Todo
type CreateTodoRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateTodoRequest là payload cập nhật một phần (PATCH).
// Field nil nghĩa là không có trong request, giữ nguyên giá trị cũ.
type UpdateTodoRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	IsDone  *bool   `json:"isDone"`
}
