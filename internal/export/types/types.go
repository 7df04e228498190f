package types

// ExportRecord represents a record in the blocklist export file. The wallet
// address is published only as a salted hash so consumers can match against
// addresses they already know without learning new ones.
type ExportRecord struct {
	Hash   string
	Name   string
	Bounty float64
}
