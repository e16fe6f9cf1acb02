package ledger

import "fmt"

// CommandError indicates the external ledger process failed to run or
// exited non-zero.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("ledger %v: %v: %s", e.Args, e.Err, e.Stderr)
	}
	return fmt.Sprintf("ledger %v: %v", e.Args, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ParseError indicates report output that does not match the expected
// field/record shape.
type ParseError struct {
	Record string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse record %q: %s", e.Record, e.Reason)
}

// AmountError indicates a currency token that matched none of the known
// notations.
type AmountError struct {
	Token string
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("cannot parse amount %q", e.Token)
}
