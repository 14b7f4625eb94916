package models

import (
	"gorm.io/gorm"
)

type HatchingRecord struct {
	ID            int      `gorm:"primary_key" json:"id"`
	BatchId       string   `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	Label         string   `gorm:"size:100;not null" json:"label" binding:"required"`
	HatchDate     DateOnly `gorm:"type:date;not null" json:"hatch_date" binding:"required"`
	Quantity      int      `gorm:"not null" json:"quantity" binding:"gte=0"`
	HatchedEggs   int      `gorm:"not null" json:"hatched_eggs" binding:"gte=0"`
	UnhatchedEggs int      `gorm:"not null" json:"unhatched_eggs" binding:"gte=0"`
	CullChicks    int      `gorm:"not null" json:"cull_chicks" binding:"gte=0"`
	DeadChicks    int      `gorm:"not null" json:"dead_chicks" binding:"gte=0"`
	Status        string   `gorm:"size:20;not null" json:"status" binding:"required"`
	Notes         string   `gorm:"type:text" json:"notes"`
}

// BeforeDelete cascades to the packaging batches built from this hatch.
func (h *HatchingRecord) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("hatch_batch_id = ?", h.ID).Delete(&PackagingBatch{}).Error
}
