package services

import (
	"context"
	"errors"

	"github.com/Handsol/nbc-final-project/storage"
	"github.com/Handsol/nbc-final-project/utils"
)

// generateUniqueID sinh ID mới cho bản ghi, thử lại tối đa 3 lần nếu ID bị trùng.
// lookup trả về storage.ErrNotFound khi ID còn trống.
func generateUniqueID(ctx context.Context, lookup func(context.Context, string) error) (string, error) {
	for i := 0; i < 3; i++ {
		id, err := utils.GenerateRandomID()
		if err != nil {
			return "", err
		}

		err = lookup(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		// ID đã tồn tại, thử lại
	}
	return "", errors.New("failed to generate a unique ID")
}
