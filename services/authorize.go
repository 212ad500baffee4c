package services

import "github.com/Handsol/nbc-final-project/models"

// Action là loại thao tác cần kiểm tra quyền
type Action int

const (
	ActionRead Action = iota
	ActionMutate
	ActionDelete
)

// Authorize quyết định caller có được thao tác trên bản ghi của ownerID hay không.
// Đọc thì ai cũng được; sửa và xóa chỉ dành cho chủ sở hữu.
// Hàm thuần, không side effect.
func Authorize(session *models.Session, ownerID string, action Action) error {
	if action == ActionRead {
		return nil
	}
	if !session.Authenticated() || session.UserID != ownerID {
		return ErrForbidden
	}
	return nil
}
