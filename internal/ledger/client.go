package ledger

import (
	"log/slog"
)

// Client queries a ledger journal file through the external ledger
// binary. It holds no state between calls; every method is a fresh
// invocation of the engine.
type Client struct {
	file           string
	run            Runner
	log            *slog.Logger
	strictRegister bool
	strictBalance  bool
}

// Options configures a Client. The zero value gives the historical
// behavior: lenient amount parsing on the register path, strict on the
// balance path.
type Options struct {
	Logger *slog.Logger
	// StrictRegister makes unparsable amount tokens fatal on the
	// register path instead of logged-and-skipped.
	StrictRegister bool
	// LenientBalance downgrades balance-path amount errors to
	// logged-and-skipped.
	LenientBalance bool
}

// NewClient creates a client for the given journal file.
func NewClient(file string, run Runner, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		file:           file,
		run:            run,
		log:            logger,
		strictRegister: opts.StrictRegister,
		strictBalance:  !opts.LenientBalance,
	}
}

func (c *Client) logSkipped(skipped []string) {
	for _, tok := range skipped {
		c.log.Warn("cannot parse amount token", "token", tok)
	}
}
