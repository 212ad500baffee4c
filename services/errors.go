package services

import "errors"

var (
	// ErrUnauthenticated: thao tác cần đăng nhập nhưng không có session
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden: đã đăng nhập nhưng không phải chủ sở hữu bản ghi
	ErrForbidden = errors.New("permission denied")
)

// ValidationError là lỗi dữ liệu đầu vào: thiếu field bắt buộc
// hoặc field có cấu trúc không parse được
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidInput(message string) error {
	return &ValidationError{Message: message}
}
