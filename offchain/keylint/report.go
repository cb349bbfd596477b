package keylint

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"

	"github.com/Abdullah1738/anchor-lint/offchain/solana"
)

const (
	SuccessMessage = "All Base58-like values decoded to 32 bytes (or none found)."
	FailureHeader  = "Found Base58-like values that fail size check:"
)

type Failure struct {
	Key    string
	Value  string
	Reason string
}

func (f Failure) Error() string {
	return fmt.Sprintf("key: %s, value: %s -> %s", f.Key, f.Value, f.Reason)
}

type ValidKey struct {
	Key    string
	Pubkey solana.Pubkey
}

type Report struct {
	Checked  int
	Valid    []ValidKey
	Failures []Failure
}

func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Err combines every failure into one error, nil when the report is OK.
func (r *Report) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

func (r *Report) String() string {
	var sb strings.Builder
	if r.OK() {
		sb.WriteString(SuccessMessage)
		sb.WriteByte('\n')
		return sb.String()
	}
	sb.WriteString(FailureHeader)
	sb.WriteByte('\n')
	for _, f := range r.Failures {
		sb.WriteString("- ")
		sb.WriteString(f.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
