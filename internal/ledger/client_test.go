package ledger

import (
	"context"
	"errors"
)

// fakeRunner replays canned engine output and records every invocation.
type fakeRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func newTestClient(output string, err error) (*Client, *fakeRunner) {
	fake := &fakeRunner{output: []byte(output), err: err}
	return NewClient("test.journal", fake, Options{}), fake
}

var errExec = errors.New("exec: not found")
