package utils

import (
	"errors"
	"fmt"
	"time"

	"agency-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// LoginClaims 用于客户登录认证，主体为用户邮箱
type LoginClaims struct {
	Email string `json:"email"`
	Type  string `json:"type"` // "login"
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().JWT.Secret)
}

func GenerateLoginToken(email string, duration time.Duration) (string, error) {
	claims := LoginClaims{
		Email: email,
		Type:  "login",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    "agency-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

func ParseLoginToken(tokenString string) (*LoginClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LoginClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*LoginClaims); ok && token.Valid {
		if claims.Type != "login" {
			return nil, errors.New("invalid token type")
		}
		if claims.Email == "" {
			return nil, errors.New("token missing subject email")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
