package handlers

import (
	"errors"
	"strings"

	"github.com/Handsol/nbc-final-project/auth"
	"github.com/Handsol/nbc-final-project/middleware"
	"github.com/Handsol/nbc-final-project/models"
	"github.com/Handsol/nbc-final-project/storage"
	"github.com/Handsol/nbc-final-project/utils"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler là Identity Provider Adapter: đổi thông tin đăng nhập
// (mật khẩu hoặc Google ID token) lấy danh tính ổn định và phát session token
type AuthHandler struct {
	Users  storage.UserStore
	Google *auth.GoogleVerifier // nil nếu Google sign-in chưa được cấu hình
}

func NewAuthHandler(users storage.UserStore, google *auth.GoogleVerifier) *AuthHandler {
	return &AuthHandler{Users: users, Google: google}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// RegisterHandler đăng ký người dùng mới
//
//	@Summary	Register a local account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		credentialsRequest	true	"Username and password"
//	@Success	201			{object}	map[string]string
//	@Failure	400			{object}	map[string]string
//	@Router		/auth/register [post]
func (h *AuthHandler) RegisterHandler(c *fiber.Ctx) error {
	req := new(credentialsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "username and password are required"})
	}

	if _, err := h.Users.GetUserByUsername(c.UserContext(), req.Username); err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "username already taken"})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return serviceError(c, err, "user", "failed to register user")
	}

	// Hash mật khẩu
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "could not hash password"})
	}

	id, err := utils.GenerateRandomID()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to generate ID"})
	}

	user := models.User{
		ID:       id,
		Username: req.Username,
		Password: string(hashedPassword),
		Name:     req.Username,
	}
	if err := h.Users.InsertUser(c.UserContext(), user); err != nil {
		return serviceError(c, err, "user", "failed to register user")
	}

	return c.Status(201).JSON(fiber.Map{"message": "user registered successfully"})
}

// LoginHandler đăng nhập bằng mật khẩu, trả về cặp token
//
//	@Summary	Log in with username and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		credentialsRequest	true	"Username and password"
//	@Success	200			{object}	map[string]string
//	@Failure	401			{object}	map[string]string
//	@Router		/auth/login [post]
func (h *AuthHandler) LoginHandler(c *fiber.Ctx) error {
	req := new(credentialsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.Users.GetUserByUsername(c.UserContext(), req.Username)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	// So khớp mật khẩu
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	accessToken, refreshToken, err := auth.GenerateTokenPair(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to generate token"})
	}

	return c.Status(200).JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// GoogleLoginHandler đổi Google ID token lấy session token.
// Lần đầu đăng nhập sẽ tạo tài khoản gắn với subject của Google.
//
//	@Summary	Log in with a Google ID token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		token	body		googleLoginRequest	true	"Google ID token"
//	@Success	200		{object}	map[string]string
//	@Failure	401		{object}	map[string]string
//	@Router		/auth/google [post]
func (h *AuthHandler) GoogleLoginHandler(c *fiber.Ctx) error {
	if h.Google == nil {
		return c.Status(503).JSON(fiber.Map{"error": "google sign-in is not configured"})
	}

	req := new(googleLoginRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	identity, err := h.Google.Verify(req.IDToken)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid Google ID token"})
	}

	user, err := h.Users.GetUserByProvider(c.UserContext(), "google", identity.Subject)
	if errors.Is(err, storage.ErrNotFound) {
		id, idErr := utils.GenerateRandomID()
		if idErr != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to generate ID"})
		}
		user = models.User{
			ID:         id,
			Username:   identity.Email,
			Provider:   "google",
			ProviderID: identity.Subject,
			Name:       identity.Name,
			Picture:    identity.Picture,
		}
		if err := h.Users.InsertUser(c.UserContext(), user); err != nil {
			return serviceError(c, err, "user", "failed to create user")
		}
	} else if err != nil {
		return serviceError(c, err, "user", "failed to look up user")
	}

	accessToken, refreshToken, err := auth.GenerateTokenPair(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to generate token"})
	}

	return c.Status(200).JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// MeHandler trả về danh tính của session hiện tại
//
//	@Summary	Get the current session identity
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	models.Session
//	@Failure	403	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/auth/me [get]
func (h *AuthHandler) MeHandler(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	if !session.Authenticated() {
		return c.Status(403).JSON(fiber.Map{"error": "authentication required"})
	}
	return c.Status(200).JSON(session)
}
