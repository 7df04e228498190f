// Package export publishes verified scam reports as shareable blocklists.
// Wallet addresses are salted and hashed before leaving the database so a
// published blocklist cannot be used to enumerate addresses.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/scamtrace/scamtrace/internal/database"
	"github.com/scamtrace/scamtrace/internal/export/csv"
	"github.com/scamtrace/scamtrace/internal/export/sqlite"
	"github.com/scamtrace/scamtrace/internal/export/types"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format represents a supported export format.
type Format string

const (
	FormatSQLite Format = "sqlite"
	FormatCSV    Format = "csv"
)

// EngineVersion represents the version of the export engine.
// This should be updated when making breaking changes to the export format.
const EngineVersion = "1.0.0"

// Config holds the configuration for exports.
type Config struct {
	ExportVersion string `json:"exportVersion"`
	Salt          string `json:"salt"`
	Description   string `json:"description"`
	HashType      string `json:"hashType"`
	Iterations    uint32 `json:"iterations"`
	Memory        uint32 `json:"memory,omitempty"`
	Concurrency   int    `json:"-"`
}

// Exporter handles exporting verified scam reports.
type Exporter struct {
	db      database.Client
	outDir  string
	config  *Config
	formats []Format
}

// New creates a new exporter instance.
func New(db database.Client, outDir string, config *Config) *Exporter {
	return &Exporter{
		db:     db,
		outDir: outDir,
		config: config,
		formats: []Format{
			FormatSQLite,
			FormatCSV,
		},
	}
}

// ExportAll exports the blocklist in all supported formats.
func (e *Exporter) ExportAll(ctx context.Context) error {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	scammers, err := e.db.Model().Scammer().ListVerifiedAddresses(ctx)
	if err != nil {
		return err
	}

	addresses := make([]string, len(scammers))
	for i, scammer := range scammers {
		addresses[i] = scammer.WalletAddress
	}

	hashes := hashAddresses(
		addresses, e.config.Salt, HashType(e.config.HashType),
		e.config.Concurrency, e.config.Iterations, e.config.Memory,
	)

	records := make([]*types.ExportRecord, len(scammers))
	for i, scammer := range scammers {
		records[i] = &types.ExportRecord{
			Hash:   hashes[i],
			Name:   scammer.Name,
			Bounty: scammer.BountyAmount,
		}
	}

	if err := e.saveConfig(); err != nil {
		return err
	}

	for _, format := range e.formats {
		if err := e.export(format, records); err != nil {
			return fmt.Errorf("failed to export %s: %w", format, err)
		}
	}

	return nil
}

// export writes records in a single format.
func (e *Exporter) export(format Format, records []*types.ExportRecord) error {
	switch format {
	case FormatSQLite:
		return sqlite.New(e.outDir).Export(records)
	case FormatCSV:
		return csv.New(e.outDir).Export(records)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// saveConfig writes the export parameters next to the blocklist so
// consumers can hash their own addresses the same way.
func (e *Exporter) saveConfig() error {
	jsonConfig := struct {
		*Config

		EngineVersion string `json:"engineVersion"`
	}{
		Config:        e.config,
		EngineVersion: EngineVersion,
	}

	data, err := sonic.ConfigDefault.MarshalIndent(jsonConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export config: %w", err)
	}

	configPath := filepath.Join(e.outDir, "export_config.json")
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export config: %w", err)
	}

	return nil
}
