package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scamtrace/scamtrace/internal/export/types"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Exporter handles exporting blocklist records to a SQLite database.
type Exporter struct {
	outDir string
}

// New creates a new SQLite exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes blocklist records to blocklist.db, replacing any previous file.
func (e *Exporter) Export(records []*types.ExportRecord) error {
	path := filepath.Join(e.outDir, "blocklist.db")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file: %w", err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate|sqlite.OpenReadWrite)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer conn.Close()

	err = sqlitex.Execute(conn, `
		CREATE TABLE blocklist (
			hash TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			bounty REAL NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	// Insert records in batches
	const batchSize = 1000
	for i := 0; i < len(records); i += batchSize {
		end := min(i+batchSize, len(records))

		if err := sqlitex.Execute(conn, "BEGIN TRANSACTION", nil); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for _, record := range records[i:end] {
			err = sqlitex.Execute(conn,
				"INSERT INTO blocklist (hash, name, bounty) VALUES (?, ?, ?)",
				&sqlitex.ExecOptions{
					Args: []any{record.Hash, record.Name, record.Bounty},
				})
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}

		if err := sqlitex.Execute(conn, "COMMIT", nil); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return nil
}
