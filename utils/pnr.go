package utils

import (
	"fmt"
	"math/rand"
)

// GeneratePNR returns a candidate 10-digit PNR drawn uniformly from
// [1000000000, 9999999999]. Uniqueness is owned by the database constraint;
// callers retry on collision.
func GeneratePNR() string {
	const min, max = 1_000_000_000, 9_999_999_999
	return fmt.Sprintf("%d", min+rand.Int63n(max-min+1))
}

// IsValidPNR reports whether pnr looks like a PNR: exactly 10 digits.
func IsValidPNR(pnr string) bool {
	if len(pnr) != 10 {
		return false
	}
	for _, r := range pnr {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GenerateFoodOrderID returns a candidate food order id of the form
// "FO-" followed by 8 digits. Same collision policy as PNRs.
func GenerateFoodOrderID() string {
	return fmt.Sprintf("FO-%08d", rand.Int63n(100_000_000))
}
