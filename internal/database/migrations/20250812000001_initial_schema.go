package migrations

import (
	"context"
	"fmt"

	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Scammer)(nil),
			(*types.BountyContribution)(nil),
			(*types.ScammerComment)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %T: %w", model, err)
			}
		}

		// The ledger is queried by scammer, newest-first, and counted by
		// scammer; the list index covers both.
		indexes := []struct {
			name  string
			table string
			expr  string
		}{
			{"idx_bounty_contributions_scammer_created", "bounty_contributions", "(scammer_id, created_at DESC)"},
			{"idx_scammers_status_created", "scammers", "(status, created_at DESC)"},
			{"idx_scammers_wallet_address", "scammers", "(wallet_address)"},
			{"idx_scammer_comments_scammer_created", "scammer_comments", "(scammer_id, created_at DESC)"},
		}

		for _, idx := range indexes {
			_, err := db.NewRaw(fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS %s ON %s %s",
				idx.name, idx.table, idx.expr)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create index %s: %w", idx.name, err)
			}
		}

		_, err := db.NewRaw(
			"ALTER TABLE bounty_contributions " +
				"ADD CONSTRAINT fk_bounty_contributions_scammer " +
				"FOREIGN KEY (scammer_id) REFERENCES scammers (id)").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add contribution foreign key: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		tables := []string{"scammer_comments", "bounty_contributions", "scammers"}
		for _, table := range tables {
			if _, err := db.NewRaw("DROP TABLE IF EXISTS " + table + " CASCADE").Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}

		return nil
	})
}
