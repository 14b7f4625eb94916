package reports

import (
	"context"

	"github.com/mmdatafocus/hatchery_backend/config"
)

type ProductionSummaryRow struct {
	Breed      string `json:"breed"`
	BatchCount int    `json:"batch_count"`
	TotalEggs  int    `json:"total_eggs"`
}

// GetProductionSummaryReport groups incubation batches by breed, counting
// batches and summing eggs set, ordered by breed ascending.
func GetProductionSummaryReport(ctx context.Context) ([]*ProductionSummaryRow, error) {
	sql := `
SELECT
    breed,
    COUNT(id) AS batch_count,
    SUM(quantity) AS total_eggs
FROM
    incubation_batches
GROUP BY breed
ORDER BY breed
`

	var rows []*ProductionSummaryRow
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*ProductionSummaryRow{}
	}
	return rows, nil
}
