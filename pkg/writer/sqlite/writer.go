// Package sqlite provides SQLite database writing for fragment summary
// tables.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/table"
)

// Date format for HeaderTable (ISO 8601)
const headerDateFormat = "2006-01-02"

// RunInfo describes the conversion run recorded in HeaderTable.
type RunInfo struct {
	Source    string
	TopN      int
	MinRelPct float64
}

// Writer handles writing summary rows to SQLite database files.
type Writer struct {
	db         *sql.DB
	outputPath string
	rowStmt    *sql.Stmt
	rowID      int
}

// NewWriter creates a new SQLite writer.
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
		rowID:      1,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema.
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS SummaryTable (
		RowId INTEGER PRIMARY KEY,
		Batch TEXT,
		Scans TEXT,
		ScanNumber INTEGER,
		PrecursorMass DOUBLE,
		NFragments INTEGER,
		Fragments TEXT
	);

	CREATE TABLE IF NOT EXISTS HeaderTable (
		CreationDate TEXT,
		Source TEXT,
		TopN INTEGER,
		MinRelPct DOUBLE
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion.
func (w *Writer) prepareStatements() error {
	var err error

	w.rowStmt, err = w.db.Prepare(`
		INSERT INTO SummaryTable (
			RowId, Batch, Scans, ScanNumber, PrecursorMass, NFragments, Fragments
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare row statement: %w", err)
	}

	return nil
}

// WriteRow writes a single summary row to the database. Absent scan and
// precursor values are stored as SQL NULL.
func (w *Writer) WriteRow(row table.Row) error {
	var scans interface{}
	if row.Scans.Valid {
		scans = row.Scans.String
	}

	var scanNumber interface{}
	if row.ScanNumber.Valid {
		scanNumber = row.ScanNumber.Int64
	}

	var precursorMass interface{}
	if row.PrecursorMass.Valid {
		precursorMass = row.PrecursorMass.Float64
	}

	_, err := w.rowStmt.Exec(
		w.rowID,
		row.Batch,
		scans,
		scanNumber,
		precursorMass,
		row.NFragments,
		row.Fragments,
	)
	if err != nil {
		return fmt.Errorf("failed to insert row: %w", err)
	}

	w.rowID++
	return nil
}

// Finalize writes the header table and closes the database.
func (w *Writer) Finalize(info RunInfo) error {
	_, err := w.db.Exec(`
		INSERT INTO HeaderTable (CreationDate, Source, TopN, MinRelPct)
		VALUES (?, ?, ?, ?)
	`, time.Now().Format(headerDateFormat), info.Source, info.TopN, info.MinRelPct)
	if err != nil {
		return fmt.Errorf("failed to insert header: %w", err)
	}

	return w.Close()
}

// Close closes the prepared statements and the database. Safe to call
// after Finalize.
func (w *Writer) Close() error {
	if w.db == nil {
		return nil
	}

	if w.rowStmt != nil {
		w.rowStmt.Close()
		w.rowStmt = nil
	}

	db := w.db
	w.db = nil
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
