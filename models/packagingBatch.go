package models

import (
	"fmt"

	"github.com/mmdatafocus/hatchery_backend/utils"
	"gorm.io/gorm"
)

type PackagingBatch struct {
	ID             int             `gorm:"primary_key" json:"id"`
	BatchId        string          `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	Label          string          `gorm:"size:100;not null" json:"label" binding:"required"`
	PackagingDate  DateOnly        `gorm:"type:date;not null" json:"packaging_date" binding:"required"`
	HatchBatchId   int             `gorm:"index;not null" json:"hatch_batch_id" binding:"required"`
	TypeOfChicks   string          `gorm:"size:50;not null" json:"type_of_chicks" binding:"required"`
	BoxType        string          `gorm:"size:50;not null" json:"box_type" binding:"required"`
	FullBoxes      int             `gorm:"not null" json:"full_boxes" binding:"gte=0"`
	UnfullBoxes    int             `gorm:"not null" json:"unfull_boxes" binding:"gte=0"`
	UnfullBoxCount int             `gorm:"not null" json:"unfull_box_count" binding:"gte=0"`
	ChicksPacked   int             `gorm:"not null" json:"chicks_packed" binding:"gte=0"`
	Status         PackagingStatus `gorm:"size:20;not null" json:"status" binding:"required,oneof=pending completed"`
	Notes          string          `gorm:"type:text" json:"notes"`
}

// BeforeSave rejects writes that point at a nonexistent hatching record.
func (p *PackagingBatch) BeforeSave(tx *gorm.DB) error {
	if err := utils.ValidateResourceId[HatchingRecord](tx, p.HatchBatchId); err != nil {
		return fmt.Errorf("%w: hatch_batch_id %d", utils.ErrorInvalidReference, p.HatchBatchId)
	}
	return nil
}
