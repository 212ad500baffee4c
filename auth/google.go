package auth

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

const defaultGoogleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleVerifier xác thực ID token của Google bằng bộ khóa công khai (JWKS)
type GoogleVerifier struct {
	jwks     *keyfunc.JWKS
	clientID string
}

// GoogleIdentity là danh tính trích từ một ID token hợp lệ
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// NewGoogleVerifier tải JWKS của Google và giữ nó tự refresh nền
func NewGoogleVerifier() (*GoogleVerifier, error) {
	jwksURL := os.Getenv("GOOGLE_JWKS_URL")
	if jwksURL == "" {
		jwksURL = defaultGoogleJWKSURL
	}

	options := keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			log.Printf("There was an error refreshing the Google JWKS\nError: %s", err.Error())
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  time.Minute * 5,
		RefreshTimeout:    time.Second * 10,
		RefreshUnknownKID: true,
	}

	jwks, err := keyfunc.Get(jwksURL, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS from resource at %s: %w", jwksURL, err)
	}

	return &GoogleVerifier{
		jwks:     jwks,
		clientID: os.Getenv("GOOGLE_CLIENT_ID"),
	}, nil
}

// Verify kiểm tra chữ ký, issuer và audience của ID token,
// trả về danh tính Google ổn định (subject) kèm profile
func (v *GoogleVerifier) Verify(idToken string) (*GoogleIdentity, error) {
	var opts []jwt.ParserOption
	if v.clientID != "" {
		opts = append(opts, jwt.WithAudience(v.clientID))
	}

	token, err := jwt.Parse(idToken, v.jwks.Keyfunc, opts...)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid Google ID token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	iss, _ := claims["iss"].(string)
	if iss != "https://accounts.google.com" && iss != "accounts.google.com" {
		return nil, errors.New("unexpected token issuer")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token has no subject")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &GoogleIdentity{
		Subject: sub,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
