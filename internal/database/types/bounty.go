package types

import "time"

// BountyContribution is an append-only ledger entry recording one
// contribution toward a scammer's bounty. Rows are created once and never
// mutated or deleted in normal operation.
type BountyContribution struct {
	ID            string    `bun:",pk,type:uuid" json:"id"`
	ScammerID     string    `bun:",notnull,type:uuid" json:"scammerId"`
	ContributorID string    `bun:",notnull"      json:"contributorId"`
	Amount        float64   `bun:",notnull"      json:"amount"`
	Comment       string    `bun:""              json:"comment,omitempty"`
	CreatedAt     time.Time `bun:",notnull"      json:"createdAt"`
}
