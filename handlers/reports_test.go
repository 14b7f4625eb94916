package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestHatchRateReport(t *testing.T) {
	cleanTables(t, "packaging_batches", "hatching_records", "incubation_batches", "incubators")

	var result map[string]interface{}

	w := authed("GET", "/api/reports/hatch-rate/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty hatch rate returned %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &result)
	if result["hatch_rate_percent"].(float64) != 0 {
		t.Errorf("empty hatchery rate = %v, want 0", result["hatch_rate_percent"])
	}

	incubator := recordID(t, mustCreate(t, "/api/incubators/", incubatorPayload("INC-R")))
	mustCreate(t, "/api/incubations/", incubationBatchPayload(incubator, "R-1", "Leghorn", 120))
	mustCreate(t, "/api/incubations/", incubationBatchPayload(incubator, "R-2", "Sussex", 80))

	hatchA := hatchingPayload("R-1")
	hatchA["hatched_eggs"] = 90
	mustCreate(t, "/api/hatchings/", hatchA)
	hatchB := hatchingPayload("R-2")
	hatchB["hatched_eggs"] = 60
	mustCreate(t, "/api/hatchings/", hatchB)

	w = authed("GET", "/api/reports/hatch-rate/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("hatch rate returned %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &result)
	if result["hatch_rate_percent"].(float64) != 75 {
		t.Errorf("hatch rate = %v, want 75 (150 hatched of 200 set)", result["hatch_rate_percent"])
	}
}

func TestSalesSummaryReport(t *testing.T) {
	cleanTables(t, "sale_records")

	mk := func(date, amount string, qty int) {
		mustCreate(t, "/api/sales/", map[string]interface{}{
			"batch_id":       "S-r",
			"date":           date,
			"customer":       "Reporting Coop",
			"product_type":   "chicks",
			"quantity":       qty,
			"unit_price":     "1.00",
			"total_amount":   amount,
			"paid":           amount,
			"balance":        "0.00",
			"payment_method": "Cash",
			"status":         "completed",
		})
	}
	mk("2024-01-01", "100.00", 2)
	mk("2024-01-01", "50.00", 1)
	mk("2024-01-02", "25.50", 5)

	w := authed("GET", "/api/reports/sales/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("sales summary returned %d: %s", w.Code, w.Body.String())
	}
	var rows []map[string]interface{}
	decodeBody(t, w, &rows)
	if len(rows) != 2 {
		t.Fatalf("sales summary has %d rows, want 2: %v", len(rows), rows)
	}
	if rows[0]["date"] != "2024-01-01" || rows[0]["total_amount"] != "150" || rows[0]["total_qty"].(float64) != 3 {
		t.Errorf("first row = %v, want 2024-01-01 / 150 / 3", rows[0])
	}
	if rows[1]["date"] != "2024-01-02" || rows[1]["total_amount"] != "25.5" || rows[1]["total_qty"].(float64) != 5 {
		t.Errorf("second row = %v, want 2024-01-02 / 25.5 / 5", rows[1])
	}
}

func TestSalesSummaryExport(t *testing.T) {
	w := authed("GET", "/api/reports/sales/export/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export returned %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("export content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "sales-summary.xlsx") {
		t.Errorf("export disposition = %q", cd)
	}
	// xlsx files are zip archives.
	if body := w.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Errorf("export body does not look like a workbook")
	}
}

func TestProductionSummaryReport(t *testing.T) {
	cleanTables(t, "packaging_batches", "hatching_records", "incubation_batches", "incubators")

	incubator := recordID(t, mustCreate(t, "/api/incubators/", incubatorPayload("INC-P")))
	mustCreate(t, "/api/incubations/", incubationBatchPayload(incubator, "P-1", "Leghorn", 100))
	mustCreate(t, "/api/incubations/", incubationBatchPayload(incubator, "P-2", "Leghorn", 50))
	mustCreate(t, "/api/incubations/", incubationBatchPayload(incubator, "P-3", "Sussex", 70))

	w := authed("GET", "/api/reports/production/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("production summary returned %d: %s", w.Code, w.Body.String())
	}
	var rows []map[string]interface{}
	decodeBody(t, w, &rows)
	if len(rows) != 2 {
		t.Fatalf("production summary has %d rows, want 2: %v", len(rows), rows)
	}
	if rows[0]["breed"] != "Leghorn" || rows[0]["batch_count"].(float64) != 2 || rows[0]["total_eggs"].(float64) != 150 {
		t.Errorf("first row = %v, want Leghorn / 2 / 150", rows[0])
	}
	if rows[1]["breed"] != "Sussex" || rows[1]["batch_count"].(float64) != 1 || rows[1]["total_eggs"].(float64) != 70 {
		t.Errorf("second row = %v, want Sussex / 1 / 70", rows[1])
	}
}
