package bidform

import (
	"strconv"
	"strings"

	"auction-web/utils"
)

// DepositRate is the deposit share of the bid amount, in percent
const DepositRate = 5

// Deposit returns floor(bid × DepositRate / 100). Negative bids yield 0.
func Deposit(bid int64) int64 {
	if bid <= 0 {
		return 0
	}
	// split to stay clear of overflow near MaxInt64
	return bid/100*DepositRate + bid%100*DepositRate/100
}

// ParseAmount keeps only the digits of a formatted amount ("1,000,000원")
// and parses them. ok is false when no digits remain or the value overflows.
func ParseAmount(raw string) (amount int64, ok bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatAmount groups digits the Korean way: 1000000 -> "1,000,000"
func FormatAmount(n int64) string {
	return utils.FormatNumber(n)
}

// FormatWon renders an amount with the won suffix: 50000 -> "50,000원"
func FormatWon(n int64) string {
	return utils.FormatWon(n)
}

// SanitizeAccountNumber keeps digits and dashes
func SanitizeAccountNumber(raw string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, raw)
}
