package types

import "time"

// ScammerComment represents a community note on a scam report. A commenter
// gets one comment per report; writing again replaces the previous message.
type ScammerComment struct {
	ScammerID   string    `bun:",pk,notnull,type:uuid" json:"scammerId"`
	CommenterID string    `bun:",pk,notnull" json:"commenterId"`
	Message     string    `bun:",notnull"    json:"message"`
	CreatedAt   time.Time `bun:",notnull"    json:"createdAt"`
	UpdatedAt   time.Time `bun:",notnull"    json:"updatedAt"`
}
