package models

// Candling records are standalone: batch_id is the free-form cohort label
// shared across stages, not a structural reference.

type FertileEggCandling struct {
	ID           int      `gorm:"primary_key" json:"id"`
	BatchId      string   `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	CandlingDate DateOnly `gorm:"type:date;not null" json:"candling_date" binding:"required"`
	Count        int      `gorm:"not null" json:"count" binding:"gte=0"`
	Notes        string   `gorm:"type:text" json:"notes"`
}

type ClearEggCandling struct {
	ID           int      `gorm:"primary_key" json:"id"`
	BatchId      string   `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	CandlingDate DateOnly `gorm:"type:date;not null" json:"candling_date" binding:"required"`
	Count        int      `gorm:"not null" json:"count" binding:"gte=0"`
	Notes        string   `gorm:"type:text" json:"notes"`
}
