package models

import (
	"github.com/shopspring/decimal"
)

// SaleRecord mirrors the hand ledger: total, paid and balance are all entered
// by the operator, so balance = total_amount - paid is expected but never
// recomputed here.
type SaleRecord struct {
	ID            int             `gorm:"primary_key" json:"id"`
	BatchId       string          `gorm:"size:50;not null" json:"batch_id" binding:"required"`
	Date          DateOnly        `gorm:"type:date;not null" json:"date" binding:"required"`
	Customer      string          `gorm:"size:100;not null" json:"customer" binding:"required"`
	ProductType   string          `gorm:"size:50;not null" json:"product_type" binding:"required"`
	Quantity      int             `gorm:"not null" json:"quantity" binding:"gte=0"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"unit_price" binding:"dgte0"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_amount" binding:"dgte0"`
	Paid          decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"paid" binding:"dgte0"`
	Balance       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"balance"`
	PaymentMethod string          `gorm:"size:50;not null" json:"payment_method" binding:"required"`
	Status        SaleStatus      `gorm:"size:20;not null" json:"status" binding:"required,oneof=pending completed cancelled"`
	Notes         string          `gorm:"type:text" json:"notes"`
}
