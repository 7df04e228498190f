package badge

import "fmt"

// FormatAmount renders a token amount with a K/M/B suffix at two-decimal
// precision. Values below one thousand are printed as-is.
func FormatAmount(v float64) string {
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("%.2fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.2fK", v/1_000)
	default:
		return fmt.Sprintf("%g", v)
	}
}
