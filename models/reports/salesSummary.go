package reports

import (
	"context"

	"github.com/mmdatafocus/hatchery_backend/config"
	"github.com/mmdatafocus/hatchery_backend/models"
	"github.com/shopspring/decimal"
)

type SalesSummaryRow struct {
	Date        models.DateOnly `json:"date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalQty    int             `json:"total_qty"`
}

// GetSalesSummaryReport groups sale records by date, summing amount and
// quantity, ordered by date ascending.
func GetSalesSummaryReport(ctx context.Context) ([]*SalesSummaryRow, error) {
	sql := `
SELECT
    date,
    SUM(total_amount) AS total_amount,
    SUM(quantity) AS total_qty
FROM
    sale_records
GROUP BY date
ORDER BY date
`

	var rows []*SalesSummaryRow
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*SalesSummaryRow{}
	}
	return rows, nil
}
