package models

import (
	"github.com/shopspring/decimal"
)

// LockdownBatch tracks the restricted late-incubation phase with its
// environmental readings. incubator_id is a free-form operator label here,
// not a foreign key, matching the paper workflow it was lifted from.
type LockdownBatch struct {
	ID               int             `gorm:"primary_key" json:"id"`
	BatchId          string          `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	Label            string          `gorm:"size:100;not null" json:"label" binding:"required"`
	StartDate        DateOnly        `gorm:"type:date;not null" json:"start_date" binding:"required"`
	LockdownDate     DateOnly        `gorm:"type:date;not null" json:"lockdown_date" binding:"required"`
	Quantity         int             `gorm:"not null" json:"quantity" binding:"gte=0"`
	IncubatorId      string          `gorm:"size:50" json:"incubator_id"`
	TransferredTo    string          `gorm:"size:50" json:"transferred_to"`
	Humidity         decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"humidity" binding:"dgte0"`
	Temperature      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"temperature"`
	NotificationSent bool            `gorm:"not null;default:false" json:"notification_sent"`
	Notes            string          `gorm:"type:text" json:"notes"`
	Day              int             `gorm:"not null" json:"day" binding:"gte=0"`
}
