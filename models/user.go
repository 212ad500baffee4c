package models

// User là tài khoản người dùng. Đăng nhập bằng mật khẩu hoặc qua Google OAuth.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"-"` // mật khẩu đã hash, không trả về client
	Provider   string `json:"-"`
	ProviderID string `json:"-"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
}

// Session là danh tính đã xác thực gắn với một request
type Session struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Authenticated báo session có mang danh tính hợp lệ hay không.
// Session thiếu UserID được coi như khách vãng lai.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}
