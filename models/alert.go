package models

import (
	"time"
)

// Alert is an operational event raised against some monitored source (an
// incubator probe, a sensor feed). Value and threshold are free-form strings
// such as "38.5°C" — readings come from mixed instruments.
type Alert struct {
	ID         int         `gorm:"primary_key" json:"id"`
	Type       string      `gorm:"size:50;not null" json:"type" binding:"required"`
	Severity   string      `gorm:"size:20;not null" json:"severity" binding:"required"`
	Source     string      `gorm:"size:100;not null" json:"source" binding:"required"`
	Value      string      `gorm:"size:100;not null" json:"value" binding:"required"`
	Threshold  string      `gorm:"size:100;not null" json:"threshold" binding:"required"`
	Timestamp  time.Time   `gorm:"not null" json:"timestamp" binding:"required"`
	Message    string      `gorm:"type:text" json:"message"`
	Status     AlertStatus `gorm:"size:20;not null" json:"status" binding:"required,oneof=active resolved acknowledged"`
	Duration   string      `gorm:"size:50" json:"duration"`
	Resolution string      `gorm:"type:text" json:"resolution"`
}
