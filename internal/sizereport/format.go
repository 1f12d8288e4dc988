package sizereport

import "strconv"

// HumanSize formats a byte count the way size badges show it: counts above
// 1000 become kilobytes truncated to two decimals ("123.45k"), others stay
// in bytes ("999b").
func HumanSize(n int64) string {
	if n > 1000 {
		k := float64(n/10) / 100
		return strconv.FormatFloat(k, 'f', -1, 64) + "k"
	}
	return strconv.FormatInt(n, 10) + "b"
}
