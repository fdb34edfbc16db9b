package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/fretemap/fretemap-cli/internal/fields"
	"github.com/fretemap/fretemap-cli/internal/preview"
)

func TestExportRateRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rates.db")
	rows := []fields.RateRow{
		{CEPStart: "01000000", CEPEnd: "01999999", WeightMax: 9999, Price: 25.9, LeadTimeDays: 5},
		{CEPStart: "02000000", CEPEnd: "02999999", WeightMax: 9999, Price: 28.4, LeadTimeDays: 6},
	}
	if err := ExportRateRows(dbPath, "tabela.csv", rows); err != nil {
		t.Fatalf("ExportRateRows: %v", err)
	}
	// A second export appends rather than replacing.
	if err := ExportRateRows(dbPath, "tabela.csv", rows[:1]); err != nil {
		t.Fatalf("ExportRateRows again: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM rate_rows`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
	var price float64
	if err := db.QueryRow(`SELECT price FROM rate_rows WHERE cep_start = '01000000' LIMIT 1`).Scan(&price); err != nil {
		t.Fatalf("select: %v", err)
	}
	if price != 25.9 {
		t.Fatalf("price = %v", price)
	}
}

func TestExportOptions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rates.db")
	opts := []preview.Option{
		{CarrierName: "Jadlog", Price: 32.5, DeliveryDays: 4, CarrierID: "—"},
	}
	if err := ExportOptions(dbPath, "cotacao.json", opts); err != nil {
		t.Fatalf("ExportOptions: %v", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	var name string
	var days int
	if err := db.QueryRow(`SELECT carrier_name, delivery_days FROM quote_options`).Scan(&name, &days); err != nil {
		t.Fatalf("select: %v", err)
	}
	if name != "Jadlog" || days != 4 {
		t.Fatalf("got %s/%d", name, days)
	}
}
