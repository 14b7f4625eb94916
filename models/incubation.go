package models

import (
	"fmt"

	"github.com/mmdatafocus/hatchery_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Incubator struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name" binding:"required"`
	Location    string `gorm:"size:100" json:"location"`
	Capacity    int    `gorm:"not null" json:"capacity" binding:"gte=0"`
	Description string `gorm:"type:text" json:"description"`
}

// BeforeDelete cascades to the incubator's batches.
func (i *Incubator) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("incubator_id = ?", i.ID).Delete(&IncubationBatch{}).Error
}

type IncubationBatch struct {
	ID                int             `gorm:"primary_key" json:"id"`
	BatchId           string          `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	IncubatorId       int             `gorm:"index;not null" json:"incubator_id" binding:"required"`
	StartDate         DateOnly        `gorm:"type:date;not null" json:"start_date" binding:"required"`
	ExpectedHatchDate DateOnly        `gorm:"type:date;not null" json:"expected_hatch_date" binding:"required"`
	Quantity          int             `gorm:"not null" json:"quantity" binding:"gte=0"`
	Breed             string          `gorm:"size:100;not null" json:"breed" binding:"required"`
	Location          string          `gorm:"size:100" json:"location"`
	Progress          decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"progress" binding:"dgte0"`
	Status            string          `gorm:"size:50;not null" json:"status" binding:"required"`
}

// BeforeSave rejects writes that point at a nonexistent incubator.
func (b *IncubationBatch) BeforeSave(tx *gorm.DB) error {
	if err := utils.ValidateResourceId[Incubator](tx, b.IncubatorId); err != nil {
		return fmt.Errorf("%w: incubator_id %d", utils.ErrorInvalidReference, b.IncubatorId)
	}
	return nil
}
