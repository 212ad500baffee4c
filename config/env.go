package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadENV nạp biến môi trường từ file .env khi chạy local.
// Môi trường production cấp biến trực tiếp, không cần file.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" || goEnv == "development" {
		return godotenv.Load()
	}
	return nil
}
