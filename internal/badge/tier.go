package badge

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTable    = errors.New("tier table is empty")
	ErrUnsortedTable = errors.New("tier table is not sorted by ascending min percent")
	ErrNoZeroTier    = errors.New("tier table has no zero-threshold fallback tier")
)

// Tier is a single reputation level. A holder qualifies for a tier when
// their percentage of total supply meets or exceeds MinPercent.
type Tier struct {
	Name       string  `json:"name"       koanf:"name"`
	MinPercent float64 `json:"minPercent" koanf:"min_percent"`
}

// Style carries presentation metadata for a tier. It is keyed by tier name
// and has no bearing on which tier a holding qualifies for.
type Style struct {
	Icon  string `json:"icon"  koanf:"icon"`
	Color string `json:"color" koanf:"color"`
}

// DefaultTiers is the canonical tier table, ordered by ascending threshold.
// The zero-threshold Shrimp tier is the fallback for any holder.
var DefaultTiers = []Tier{
	{Name: "Shrimp", MinPercent: 0},
	{Name: "Bull", MinPercent: 0.01},
	{Name: "Lion", MinPercent: 0.05},
	{Name: "King Cobra", MinPercent: 0.1},
	{Name: "Bull Shark", MinPercent: 0.5},
	{Name: "Great Ape", MinPercent: 1.0},
	{Name: "Blue Whale", MinPercent: 2.5},
}

// DefaultStyles maps tier names to their presentation metadata.
var DefaultStyles = map[string]Style{
	"Shrimp":     {Icon: "🦐", Color: "#f87171"},
	"Bull":       {Icon: "🐂", Color: "#fb923c"},
	"Lion":       {Icon: "🦁", Color: "#facc15"},
	"King Cobra": {Icon: "🐍", Color: "#4ade80"},
	"Bull Shark": {Icon: "🦈", Color: "#38bdf8"},
	"Great Ape":  {Icon: "🦍", Color: "#a78bfa"},
	"Blue Whale": {Icon: "🐋", Color: "#f472b6"},
}

// ValidateTiers checks that a tier table is usable: non-empty, strictly
// ascending by MinPercent, and anchored by a zero-threshold fallback tier.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return ErrEmptyTable
	}

	if tiers[0].MinPercent != 0 {
		return fmt.Errorf("%w: first tier %q has min percent %v", ErrNoZeroTier, tiers[0].Name, tiers[0].MinPercent)
	}

	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinPercent <= tiers[i-1].MinPercent {
			return fmt.Errorf("%w: %q (%v) does not exceed %q (%v)",
				ErrUnsortedTable, tiers[i].Name, tiers[i].MinPercent, tiers[i-1].Name, tiers[i-1].MinPercent)
		}
	}

	return nil
}
