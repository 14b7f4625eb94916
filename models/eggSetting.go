package models

import (
	"fmt"

	"github.com/mmdatafocus/hatchery_backend/utils"
	"gorm.io/gorm"
)

type EggSetting struct {
	ID                   int             `gorm:"primary_key" json:"id"`
	BatchId              string          `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	SettingDate          DateOnly        `gorm:"type:date;not null" json:"setting_date" binding:"required"`
	Collections          []EggCollection `gorm:"many2many:egg_setting_collections" json:"-"`
	CollectionIds        []int           `gorm:"-" json:"collection_ids"`
	TypeOfEggs           string          `gorm:"size:50;not null" json:"type_of_eggs" binding:"required"`
	FullSetters          int             `gorm:"not null" json:"full_setters" binding:"gte=0"`
	UnfullSetters        int             `gorm:"not null" json:"unfull_setters" binding:"gte=0"`
	UnfullSetterEggs     int             `gorm:"not null" json:"unfull_setter_eggs" binding:"gte=0"`
	EggsSet              int             `gorm:"not null" json:"eggs_set" binding:"gte=0"`
	DirtyEggs            int             `gorm:"not null" json:"dirty_eggs" binding:"gte=0"`
	DamagedEggs          int             `gorm:"not null" json:"damaged_eggs" binding:"gte=0"`
	RejectEggs           int             `gorm:"not null" json:"reject_eggs" binding:"gte=0"`
	CumulativeRejectEggs int             `gorm:"not null" json:"cumulative_reject_eggs" binding:"gte=0"`
	Notes                string          `gorm:"type:text" json:"notes"`
}

// BeforeDelete clears the setting's collection links; the collections
// themselves are untouched.
func (s *EggSetting) BeforeDelete(tx *gorm.DB) error {
	return tx.Exec("DELETE FROM egg_setting_collections WHERE egg_setting_id = ?", s.ID).Error
}

// AfterFind exposes the linked collections as a plain id list, the shape the
// API serializes.
func (s *EggSetting) AfterFind(tx *gorm.DB) error {
	s.CollectionIds = make([]int, 0, len(s.Collections))
	for _, c := range s.Collections {
		s.CollectionIds = append(s.CollectionIds, c.ID)
	}
	return nil
}

// SyncAssociations replaces the collection link set with CollectionIds.
// Unknown ids are rejected before any row is written.
func (s *EggSetting) SyncAssociations(tx *gorm.DB) error {
	if s.CollectionIds == nil {
		return nil
	}
	if err := utils.ValidateResourceIds[EggCollection](tx, s.CollectionIds); err != nil {
		return fmt.Errorf("%w: collection_ids", utils.ErrorInvalidReference)
	}
	refs := make([]EggCollection, 0, len(s.CollectionIds))
	for _, id := range s.CollectionIds {
		refs = append(refs, EggCollection{ID: id})
	}
	return tx.Model(s).Association("Collections").Replace(refs)
}
