package sqlite_test

import (
	"path/filepath"
	"testing"

	exportSQLite "github.com/scamtrace/scamtrace/internal/export/sqlite"
	"github.com/scamtrace/scamtrace/internal/export/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// readBlocklist loads all rows from a blocklist database keyed by hash.
func readBlocklist(t *testing.T, path string) map[string]*types.ExportRecord {
	t.Helper()

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	require.NoError(t, err)
	defer conn.Close()

	records := make(map[string]*types.ExportRecord)

	err = sqlitex.Execute(conn, "SELECT hash, name, bounty FROM blocklist", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			records[stmt.ColumnText(0)] = &types.ExportRecord{
				Hash:   stmt.ColumnText(0),
				Name:   stmt.ColumnText(1),
				Bounty: stmt.ColumnFloat(2),
			}
			return nil
		},
	})
	require.NoError(t, err)

	return records
}

func TestExporterExport(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()

	records := []*types.ExportRecord{
		{Hash: "abc123", Name: "Fake Airdrop Guy", Bounty: 1500},
		{Hash: "def456", Name: "Rug Pull Crew", Bounty: 0.5},
	}

	err := exportSQLite.New(outDir).Export(records)
	require.NoError(t, err)

	got := readBlocklist(t, filepath.Join(outDir, "blocklist.db"))
	require.Len(t, got, len(records))

	for _, want := range records {
		row, ok := got[want.Hash]
		require.True(t, ok, "missing hash %s", want.Hash)
		assert.Equal(t, want.Name, row.Name)
		assert.InDelta(t, want.Bounty, row.Bounty, 1e-9)
	}
}

func TestExporterReplacesExistingFile(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	exporter := exportSQLite.New(outDir)

	require.NoError(t, exporter.Export([]*types.ExportRecord{
		{Hash: "old", Name: "old", Bounty: 1},
	}))

	replacement := []*types.ExportRecord{{Hash: "new", Name: "new", Bounty: 2}}
	require.NoError(t, exporter.Export(replacement))

	got := readBlocklist(t, filepath.Join(outDir, "blocklist.db"))
	require.Len(t, got, 1)
	assert.Contains(t, got, "new")
}
