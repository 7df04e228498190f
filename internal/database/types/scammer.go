package types

import (
	"fmt"
	"time"

	"github.com/scamtrace/scamtrace/internal/database/types/enum"
)

// Scammer is a community-reported scam record. BountyAmount is a
// denormalized running total of all contributions for this record and is
// only ever mutated through the bounty ledger.
type Scammer struct {
	ID            string             `bun:",pk,type:uuid" json:"id"`
	Name          string             `bun:",notnull"      json:"name"`
	WalletAddress string             `bun:",notnull"      json:"walletAddress"`
	Description   string             `bun:""              json:"description"`
	ReporterID    string             `bun:",notnull"      json:"reporterId"`
	Status        enum.ScammerStatus `bun:",notnull"      json:"status"`
	BountyAmount  float64            `bun:",notnull,default:0" json:"bountyAmount"`
	CreatedAt     time.Time          `bun:",notnull"      json:"createdAt"`
	UpdatedAt     time.Time          `bun:",notnull"      json:"updatedAt"`
}

// Validate checks that a new report carries the required fields.
func (s *Scammer) Validate() error {
	if s.Name == "" || s.WalletAddress == "" || s.ReporterID == "" {
		return fmt.Errorf("%w: name=%q wallet=%q reporter=%q",
			ErrInvalidReport, s.Name, s.WalletAddress, s.ReporterID)
	}

	return nil
}
