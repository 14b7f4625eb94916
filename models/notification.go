package models

import (
	"fmt"
	"time"

	"github.com/mmdatafocus/hatchery_backend/utils"
	"gorm.io/gorm"
)

type Notification struct {
	ID        int       `gorm:"primary_key" json:"id"`
	UserId    int       `gorm:"index;not null" json:"user_id" binding:"required"`
	Title     string    `gorm:"size:100;not null" json:"title" binding:"required"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeSave rejects writes that point at a nonexistent user.
func (n *Notification) BeforeSave(tx *gorm.DB) error {
	if err := utils.ValidateResourceId[User](tx, n.UserId); err != nil {
		return fmt.Errorf("%w: user_id %d", utils.ErrorInvalidReference, n.UserId)
	}
	return nil
}
