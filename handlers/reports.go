package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hatchery_backend/models/reports"
)

// Report endpoints are pure reads recomputed on every call; nothing is
// cached or maintained incrementally.

func HatchRateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := reports.GetHatchRateReport(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func SalesSummaryReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := reports.GetSalesSummaryReport(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func ProductionSummaryReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := reports.GetProductionSummaryReport(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// SalesSummaryExport streams the sales summary as an .xlsx attachment.
func SalesSummaryExport() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := reports.GetSalesSummaryReport(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		f, err := reports.BuildSalesSummaryWorkbook(rows)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=sales-summary.xlsx")
		if err := f.Write(c.Writer); err != nil {
			abortWithError(c, err)
		}
	}
}
