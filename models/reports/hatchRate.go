package reports

import (
	"context"

	"github.com/mmdatafocus/hatchery_backend/config"
	"github.com/shopspring/decimal"
)

type HatchRateResponse struct {
	HatchRatePercent float64 `json:"hatch_rate_percent"`
}

// GetHatchRateReport computes total hatched eggs over total eggs set, as a
// percentage rounded to 2 places. A hatchery with nothing set reports 0.
func GetHatchRateReport(ctx context.Context) (*HatchRateResponse, error) {
	db := config.GetDB()

	var totalSet int64
	if err := db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(quantity), 0) FROM incubation_batches").
		Scan(&totalSet).Error; err != nil {
		return nil, err
	}

	var totalHatched int64
	if err := db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(hatched_eggs), 0) FROM hatching_records").
		Scan(&totalHatched).Error; err != nil {
		return nil, err
	}

	if totalSet == 0 {
		return &HatchRateResponse{HatchRatePercent: 0}, nil
	}

	rate := decimal.NewFromInt(totalHatched).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(totalSet)).
		Round(2)
	return &HatchRateResponse{HatchRatePercent: rate.InexactFloat64()}, nil
}
