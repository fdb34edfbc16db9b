package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/fretemap/fretemap-cli/internal/fields"
	"github.com/fretemap/fretemap-cli/internal/preview"
)

const rateRowsDDL = `CREATE TABLE IF NOT EXISTS rate_rows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	cep_start TEXT NOT NULL,
	cep_end TEXT NOT NULL,
	weight_min REAL NOT NULL,
	weight_max REAL NOT NULL,
	price REAL NOT NULL,
	lead_time_days INTEGER NOT NULL
)`

const quoteOptionsDDL = `CREATE TABLE IF NOT EXISTS quote_options (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	carrier_name TEXT NOT NULL,
	price REAL NOT NULL,
	delivery_days INTEGER NOT NULL,
	carrier_id TEXT NOT NULL
)`

// ExportRateRows appends normalized rate rows to a SQLite database, creating
// the file and table on first use. source labels the ingest (usually the
// input filename) so repeated exports stay distinguishable.
func ExportRateRows(dbPath, source string, rows []fields.RateRow) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(rateRowsDDL); err != nil {
		return fmt.Errorf("create rate_rows: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO rate_rows
		(source, cep_start, cep_end, weight_min, weight_max, price, lead_time_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(source, r.CEPStart, r.CEPEnd, r.WeightMin, r.WeightMax, r.Price, r.LeadTimeDays); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert rate row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ExportOptions appends normalized quote options to a SQLite database.
func ExportOptions(dbPath, source string, opts []preview.Option) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(quoteOptionsDDL); err != nil {
		return fmt.Errorf("create quote_options: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO quote_options
		(source, carrier_name, price, delivery_days, carrier_id)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, o := range opts {
		if _, err := stmt.Exec(source, o.CarrierName, o.Price, o.DeliveryDays, o.CarrierID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert option: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
