// Package badge maps token holdings to reputation tiers. Calculations are
// pure: the same inputs always produce the same result and no I/O happens.
package badge

import (
	"errors"
	"sort"
)

var ErrInvalidSupply = errors.New("total supply must be positive")

// NextInfo describes the tier immediately above the one a holder qualified
// for, along with how far away it is.
type NextInfo struct {
	Name       string  `json:"name"`
	MinHolding float64 `json:"minHolding"`
	Remaining  float64 `json:"remaining"`
}

// Info is the result of evaluating a holding against a tier table.
// PercentOfSupply is the matched tier's threshold, not the holder's actual
// percentage; MinHolding is that threshold as an absolute token amount.
type Info struct {
	Tier            Tier      `json:"tier"`
	PercentOfSupply float64   `json:"percentOfSupply"`
	MinHolding      float64   `json:"minHolding"`
	Next            *NextInfo `json:"next,omitempty"`
}

// Calculate evaluates a holding against a tier table and returns the highest
// tier whose threshold the holding meets or exceeds. A holding exactly at a
// threshold qualifies for that tier. Negative holdings are clamped to zero.
func Calculate(holding, totalSupply float64, tiers []Tier) (*Info, error) {
	if totalSupply <= 0 {
		return nil, ErrInvalidSupply
	}

	if err := ValidateTiers(tiers); err != nil {
		return nil, err
	}

	if holding < 0 {
		holding = 0
	}

	percent := holding / totalSupply * 100

	// Scan highest threshold first; the zero tier guarantees a match.
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinPercent > sorted[j].MinPercent
	})

	matched := len(sorted) - 1
	for i, tier := range sorted {
		if percent >= tier.MinPercent {
			matched = i
			break
		}
	}

	info := &Info{
		Tier:            sorted[matched],
		PercentOfSupply: sorted[matched].MinPercent,
		MinHolding:      sorted[matched].MinPercent / 100 * totalSupply,
	}

	// Next tier is the one just above in threshold order, absent at the top.
	if matched > 0 {
		next := sorted[matched-1]
		minHolding := next.MinPercent / 100 * totalSupply
		info.Next = &NextInfo{
			Name:       next.Name,
			MinHolding: minHolding,
			Remaining:  minHolding - holding,
		}
	}

	return info, nil
}

// CalculateWithCredit evaluates a holding blended with bounty-raised credit.
// The effective holding is whichever is larger of the direct holding and
// bountyRaised*conversionRate, never their sum. Negative inputs count as zero.
func CalculateWithCredit(holding, bountyRaised, conversionRate, totalSupply float64, tiers []Tier) (*Info, error) {
	if holding < 0 {
		holding = 0
	}

	if bountyRaised < 0 {
		bountyRaised = 0
	}

	effective := holding
	if credit := bountyRaised * conversionRate; credit > effective {
		effective = credit
	}

	return Calculate(effective, totalSupply, tiers)
}
