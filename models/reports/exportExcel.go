package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildSalesSummaryWorkbook renders the sales summary rows into a one-sheet
// workbook for download by operational staff.
func BuildSalesSummaryWorkbook(rows []*SalesSummaryRow) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetCellValue("Sheet1", "A1", "Date")
	f.SetCellValue("Sheet1", "B1", "TotalAmount")
	f.SetCellValue("Sheet1", "C1", "TotalQty")

	for i, row := range rows {
		f.SetCellValue("Sheet1", "A"+fmt.Sprint(i+2), row.Date.String())
		f.SetCellValue("Sheet1", "B"+fmt.Sprint(i+2), row.TotalAmount.InexactFloat64())
		f.SetCellValue("Sheet1", "C"+fmt.Sprint(i+2), row.TotalQty)
	}

	return f, nil
}
