package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type JwtCustomClaim struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	TokenType TokenType `json:"token_type"`
	Jti       string    `json:"jti,omitempty"`
	jwt.StandardClaims
}

var jwtSecret = []byte(getJwtSecret())

func getJwtSecret() string {
	secret := os.Getenv("API_SECRET")
	if secret == "" {
		return "Hatchery-Secret"
	}
	return secret
}

func tokenLifespan(envKey string, defHours int) time.Duration {
	hours, err := strconv.Atoi(os.Getenv(envKey))
	if err != nil || hours <= 0 {
		hours = defHours
	}
	return time.Hour * time.Duration(hours)
}

// JwtGenerateAccess issues a short-lived access token for the user.
func JwtGenerateAccess(userID int, username string) (string, error) {
	return jwtGenerate(userID, username, TokenTypeAccess, "",
		tokenLifespan("TOKEN_HOUR_LIFESPAN", 1))
}

// JwtGenerateRefresh issues a refresh token carrying a jti so sessions can be
// tracked in redis when configured.
func JwtGenerateRefresh(userID int, username string, jti string) (string, error) {
	return jwtGenerate(userID, username, TokenTypeRefresh, jti,
		tokenLifespan("REFRESH_TOKEN_HOUR_LIFESPAN", 24))
}

func jwtGenerate(userID int, username string, tokenType TokenType, jti string, lifespan time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaim{
		ID:        userID,
		Username:  username,
		TokenType: tokenType,
		Jti:       jti,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(lifespan).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	token, err := t.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return token, nil
}

func JwtValidate(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &JwtCustomClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("there's a problem with the signing method")
		}
		return jwtSecret, nil
	})
}

// JwtValidateTyped validates the token and additionally checks its token_type
// claim, so refresh tokens cannot be used as access tokens and vice versa.
func JwtValidateTyped(token string, tokenType TokenType) (*JwtCustomClaim, error) {
	validated, err := JwtValidate(token)
	if err != nil || !validated.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := validated.Claims.(*JwtCustomClaim)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.TokenType != tokenType {
		return nil, errors.New("wrong token type")
	}
	return claims, nil
}
