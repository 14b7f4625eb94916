package models

import (
	"gorm.io/gorm"
)

type EggCollection struct {
	ID              int      `gorm:"primary_key" json:"id"`
	FarmerName      string   `gorm:"size:255;not null" json:"farmer_name" binding:"required"`
	Label           string   `gorm:"size:50;not null" json:"label" binding:"required"`
	AnimalType      string   `gorm:"size:50;not null" json:"animal_type" binding:"required"`
	TypeOfEggs      string   `gorm:"size:50;not null" json:"type_of_eggs" binding:"required"`
	FullTrays       int      `gorm:"not null" json:"full_trays" binding:"gte=0"`
	UnfullTrays     int      `gorm:"not null" json:"unfull_trays" binding:"gte=0"`
	UnfullTrayCount int      `gorm:"not null" json:"unfull_tray_count" binding:"gte=0"`
	DamagedEggs     int      `gorm:"not null" json:"damaged_eggs" binding:"gte=0"`
	Date            DateOnly `gorm:"type:date;not null" json:"date" binding:"required"`
}

// BeforeDelete drops the collection out of any egg setting that references
// it. The settings themselves survive with a reduced set.
func (c *EggCollection) BeforeDelete(tx *gorm.DB) error {
	return tx.Exec("DELETE FROM egg_setting_collections WHERE egg_collection_id = ?", c.ID).Error
}
