package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Handsol/nbc-final-project/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// GenerateToken tạo JWT session token cho user với thời hạn cho trước
func GenerateToken(user models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"name":    user.Name,
		"picture": user.Picture,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GenerateTokenPair tạo cặp access token và refresh token
func GenerateTokenPair(user models.User) (accessToken, refreshToken string, err error) {
	accessToken, err = GenerateToken(user, AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = GenerateToken(user, RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseSession đọc session từ token string.
// Token hỏng, hết hạn hoặc thiếu subject đều trả về lỗi.
func ParseSession(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token has no subject")
	}
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &models.Session{UserID: sub, Name: name, Picture: picture}, nil
}
