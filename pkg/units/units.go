// Package units converts between display units (decimal currency strings,
// calendar dates) and the ledger's native units (wei, unix seconds).
// All conversions are pure; invalid input is rejected with a sentinel error
// before any value reaches the ledger boundary.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Decimals is the ledger's minor-unit scale: 10^18 wei per whole unit.
const Decimals = 18

// ErrInvalidAmount is returned when a display amount cannot be converted to a
// ledger amount (non-numeric, negative, or more fractional digits than the
// ledger can represent).
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidDeadline is returned when a deadline cannot be parsed, or resolves
// to a timestamp at or before the current time.
var ErrInvalidDeadline = errors.New("invalid deadline")

var weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// ToLedgerAmount converts a decimal display string like "0.50" into an integer
// wei amount. The fractional part may carry at most Decimals digits.
func ToLedgerAmount(display string) (*big.Int, error) {
	s := strings.TrimSpace(display)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > Decimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidAmount, display, Decimals)
	}

	// Scale the fractional digits up to wei: "5" -> "500000000000000000".
	frac += strings.Repeat("0", Decimals-len(frac))

	wholeInt, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	fracInt, ok := new(big.Int).SetString(frac, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}

	wei := new(big.Int).Mul(wholeInt, weiPerUnit)
	return wei.Add(wei, fracInt), nil
}

// ToDisplayAmount converts an integer wei amount into a decimal display
// string, trimming trailing fractional zeros. The zero amount renders as "0".
func ToDisplayAmount(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0"
	}

	quo, rem := new(big.Int).QuoRem(wei, weiPerUnit, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}

	frac := fmt.Sprintf("%0*s", Decimals, rem.String())
	frac = strings.TrimRight(frac, "0")
	return quo.String() + "." + frac
}

// deadlineLayouts are accepted calendar formats, most specific first. The
// first two match the browser's datetime-local input values.
var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// ToLedgerTimestamp converts a calendar date-time string into unix seconds.
// The result must be strictly after now: a campaign cannot be created with a
// past or immediate deadline.
func ToLedgerTimestamp(display string, now time.Time) (int64, error) {
	s := strings.TrimSpace(display)
	var parsed time.Time
	var err error
	for _, layout := range deadlineLayouts {
		parsed, err = time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %q", ErrInvalidDeadline, display)
	}

	ts := parsed.Unix()
	if ts <= now.Unix() {
		return 0, fmt.Errorf("%w: %q is not in the future", ErrInvalidDeadline, display)
	}
	return ts, nil
}

// ToDisplayDate renders a unix-seconds timestamp as a calendar date-time
// string in the local timezone, truncated to whole seconds.
func ToDisplayDate(ts int64) string {
	return time.Unix(ts, 0).Format("2006-01-02T15:04:05")
}
