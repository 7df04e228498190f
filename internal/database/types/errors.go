package types

import "errors"

var (
	// ErrScammerNotFound is returned when a referenced scammer record does not exist.
	ErrScammerNotFound = errors.New("scammer not found")

	// ErrInvalidAmount is returned when a contribution amount is zero or negative.
	ErrInvalidAmount = errors.New("contribution amount must be positive")

	// ErrInvalidContributor is returned when a contributor ID is empty.
	ErrInvalidContributor = errors.New("contributor ID must not be empty")

	// ErrInvalidScammerID is returned when a scammer ID is empty.
	ErrInvalidScammerID = errors.New("scammer ID must not be empty")

	// ErrInvalidReport is returned when a scammer report is missing required fields.
	ErrInvalidReport = errors.New("report requires a name, wallet address and reporter")

	// ErrCommentNotFound is returned when a comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")
)
