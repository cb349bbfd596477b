package keylint

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Abdullah1738/anchor-lint/offchain/solana"
)

const decodeErrorPrefix = "decode_error: "

type Checker struct {
	Logger *zap.Logger
}

func NewChecker(logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{Logger: logger}
}

// Check runs extraction and decoding over text. A candidate that decodes to
// exactly 32 bytes is valid; anything else becomes a Failure. Nothing here
// is fatal.
func (c *Checker) Check(text string) *Report {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rep := &Report{}
	for _, cand := range Candidates(text) {
		rep.Checked++
		logger.Debug("checking candidate", zap.String("key", cand.Key), zap.String("value", cand.Value))

		pk, err := solana.PubkeyFromBase58(cand.Value)
		if err != nil {
			f := Failure{Key: cand.Key, Value: cand.Value, Reason: failureReason(err)}
			logger.Debug("candidate failed", zap.String("key", cand.Key), zap.String("reason", f.Reason))
			rep.Failures = append(rep.Failures, f)
			continue
		}

		logger.Debug("valid pubkey",
			zap.String("key", cand.Key),
			zap.Stringer("pubkey", pk),
			zap.Bool("on_curve", pk.IsOnCurve()),
		)
		rep.Valid = append(rep.Valid, ValidKey{Key: cand.Key, Pubkey: pk})
	}
	return rep
}

func Check(text string) *Report {
	return NewChecker(nil).Check(text)
}

func failureReason(err error) string {
	var lenErr *solana.LengthError
	if errors.As(err, &lenErr) {
		return lenErr.Error()
	}
	return decodeErrorPrefix + err.Error()
}
