package pricing

import "strconv"

// FormatAmount renders an amount with the fewest digits that represent it
// exactly: 800, 12.5, 0.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
