package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/scamtrace/scamtrace/internal/export"
	"github.com/scamtrace/scamtrace/internal/setup"
	"github.com/urfave/cli/v3"
)

// ExportLogDir specifies where export log files are stored.
const ExportLogDir = "logs/export_logs"

var ErrInvalidHashType = errors.New("invalid hash type")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "export",
		Usage: "Export verified scammer wallets as a hashed blocklist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "exports",
				Usage:   "Base output directory for export files",
			},
			&cli.StringFlag{
				Name:    "salt",
				Aliases: []string{"s"},
				Usage:   "Salt for hashing wallet addresses",
			},
			&cli.StringFlag{
				Name:    "export-version",
				Aliases: []string{"v"},
				Value:   "1.0.0",
				Usage:   "Export version",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Export description",
			},
			&cli.StringFlag{
				Name:    "hash-type",
				Aliases: []string{"t"},
				Value:   string(export.HashTypeArgon2id),
				Usage:   "Hash algorithm to use (argon2id or sha256)",
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Value:   4,
				Usage:   "Number of concurrent hash operations",
			},
			&cli.UintFlag{
				Name:    "iterations",
				Aliases: []string{"i"},
				Value:   1,
				Usage:   "Number of hash iterations",
			},
			&cli.UintFlag{
				Name:    "memory",
				Aliases: []string{"m"},
				Value:   64,
				Usage:   "Memory to use for Argon2id in MB",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize application with required dependencies
			app, err := setup.InitializeApp(ctx, "export", ExportLogDir)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.Cleanup(ctx)

			// Create timestamped output directory
			baseDir := c.String("output")
			timestamp := time.Now().UTC().Format("2006-01-02_150405")

			outDir := filepath.Join(baseDir, timestamp)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			// Get export configuration
			config, err := getExportConfig(c)
			if err != nil {
				return fmt.Errorf("failed to get export configuration: %w", err)
			}

			// Export all formats
			exporter := export.New(app.DB, outDir, config)
			if err := exporter.ExportAll(ctx); err != nil {
				return fmt.Errorf("failed to export data: %w", err)
			}

			log.Printf("Export completed: %s", outDir)

			return nil
		},
	}

	return app.Run(context.Background(), os.Args)
}

// getExportConfig validates CLI flags into an export configuration.
func getExportConfig(c *cli.Command) (*export.Config, error) {
	hashType := c.String("hash-type")
	if hashType != string(export.HashTypeArgon2id) && hashType != string(export.HashTypeSHA256) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHashType, hashType)
	}

	if c.String("salt") == "" {
		return nil, errors.New("salt must not be empty")
	}

	return &export.Config{
		ExportVersion: c.String("export-version"),
		Salt:          c.String("salt"),
		Description:   c.String("description"),
		HashType:      hashType,
		Iterations:    uint32(c.Uint("iterations")), //nolint:gosec // -
		Memory:        uint32(c.Uint("memory")),     //nolint:gosec // -
		Concurrency:   int(c.Int("concurrency")),
	}, nil
}
