package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/hatchery_backend/config"
	"github.com/mmdatafocus/hatchery_backend/utils"
	"gorm.io/gorm"
)

// User is the authentication subject. There is no per-role authorization:
// any active user may call any endpoint.
type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Username  string    `gorm:"size:100;not null;unique" json:"username" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     *string   `gorm:"size:100;unique" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"password"`
	IsActive  *bool     `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (result *User) PrepareGive() {
	result.Password = ""
}

// BeforeDelete cascades to the user's notifications.
func (user *User) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("user_id = ?", user.ID).Delete(&Notification{}).Error
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var refreshSessionLifespan = 30 * 24 * time.Hour

// Login verifies the credentials and issues an access/refresh token pair.
// When redis is configured the refresh session is recorded under its jti so
// it can be revoked; without redis the tokens stand on their own.
func Login(ctx context.Context, username string, password string) (*TokenPair, error) {
	db := config.GetDB()

	var user User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid username or password")
		}
		return nil, err
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, errors.New("account is inactive")
	}

	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, errors.New("invalid username or password")
	}

	access, err := utils.JwtGenerateAccess(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	jti := uuid.NewString()
	refresh, err := utils.JwtGenerateRefresh(user.ID, user.Username, jti)
	if err != nil {
		return nil, err
	}
	if err := config.SetRedisValue("Token:"+jti, user.Username, refreshSessionLifespan); err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// RefreshAccess exchanges a valid refresh token for a new access token.
func RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.JwtValidateTyped(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	// Revocation check is best-effort: only enforced when redis is up and the
	// token carries a jti.
	if claims.Jti != "" {
		if _, found, err := config.GetRedisValue("Token:" + claims.Jti); err == nil && config.GetRedisDB() != nil && !found {
			return "", errors.New("refresh session revoked")
		}
	}

	var user User
	db := config.GetDB()
	if err := db.WithContext(ctx).First(&user, claims.ID).Error; err != nil {
		return "", errors.New("user no longer exists")
	}
	if user.IsActive != nil && !*user.IsActive {
		return "", errors.New("account is inactive")
	}

	return utils.JwtGenerateAccess(user.ID, user.Username)
}
