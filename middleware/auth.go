package middleware

import (
	"strings"

	"github.com/Handsol/nbc-final-project/auth"
	"github.com/Handsol/nbc-final-project/models"
	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// SessionMiddleware đọc Bearer token từ header Authorization nếu có
// và lưu session vào context. Không chặn request: thiếu token hay token
// hỏng đều được coi là khách vãng lai, tầng service sẽ tự quyết định
// thao tác nào cần đăng nhập.
func SessionMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.Next()
	}

	session, err := auth.ParseSession(tokenString)
	if err != nil {
		return c.Next()
	}

	c.Locals(sessionKey, session)
	return c.Next()
}

// SessionFromCtx trả về session của request, nil nếu chưa đăng nhập
func SessionFromCtx(c *fiber.Ctx) *models.Session {
	if session, ok := c.Locals(sessionKey).(*models.Session); ok {
		return session
	}
	return nil
}
