package ledger

import (
	"errors"
	"fmt"
)

// ErrLedgerUnavailable is returned when the ledger RPC endpoint cannot be
// reached. Retry policy is a caller concern; this layer never retries.
var ErrLedgerUnavailable = errors.New("ledger unavailable")

// ErrUserRejected is returned when the wallet declines to sign a write.
var ErrUserRejected = errors.New("signing rejected")

// RevertError is returned when the ledger reverts a submitted write. Message
// carries the ledger-supplied short reason when one could be recovered.
type RevertError struct {
	Message string
}

func (e *RevertError) Error() string {
	if e.Message == "" {
		return "ledger reverted the call"
	}
	return fmt.Sprintf("ledger reverted the call: %s", e.Message)
}

// DecodeError is returned when data read from the ledger does not match the
// expected shape (wrong arity, non-numeric amount or timestamp fields). It is
// raised only at the ledger boundary; typed entities flow everywhere else.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
