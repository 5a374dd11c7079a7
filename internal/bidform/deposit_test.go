package bidform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	tests := []struct {
		bid  int64
		want int64
	}{
		{bid: 0, want: 0},
		{bid: 1, want: 0},
		{bid: 19, want: 0},
		{bid: 20, want: 1},
		{bid: 199, want: 9},
		{bid: 1000000, want: 50000},
		{bid: 1234567, want: 61728},
		{bid: -100, want: 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Deposit(tt.bid), "bid %d", tt.bid)
	}
}

func TestDeposit_MatchesFloorFormula(t *testing.T) {
	for bid := int64(0); bid < 5000; bid++ {
		require.Equal(t, bid*DepositRate/100, Deposit(bid), "bid %d", bid)
	}
	// no overflow at the top of the range
	require.Equal(t, int64(math.MaxInt64/100*5+math.MaxInt64%100*5/100), Deposit(math.MaxInt64))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int64
		wantOK bool
	}{
		{name: "formatted", raw: "1,000,000", want: 1000000, wantOK: true},
		{name: "with_suffix", raw: "500,000원", want: 500000, wantOK: true},
		{name: "plain", raw: "42", want: 42, wantOK: true},
		{name: "zero", raw: "0", want: 0, wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "letters_only", raw: "abc", wantOK: false},
		{name: "overflow", raw: "99999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatWon(t *testing.T) {
	require.Equal(t, "50,000원", FormatWon(50000))
	require.Equal(t, "0원", FormatWon(0))
	require.Equal(t, "1,000,000", FormatAmount(1000000))
}

func TestSanitizeAccountNumber(t *testing.T) {
	require.Equal(t, "123-456-7890", SanitizeAccountNumber("123-456 7890 번"))
}
