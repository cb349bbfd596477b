package solana

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const PubkeyLen = 32

type Pubkey [PubkeyLen]byte

var (
	ErrInvalidPubkey = errors.New("invalid pubkey")

	SystemProgramID        = mustParsePubkey("11111111111111111111111111111111")
	TokenProgramID         = mustParsePubkey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	BPFLoaderUpgradeableID = mustParsePubkey("BPFLoaderUpgradeab1e11111111111111111111111")
)

// LengthError is returned when a value decodes cleanly but not to
// PubkeyLen bytes.
type LengthError struct {
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("decoded_len=%d (expected %d)", e.Got, PubkeyLen)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidPubkey
}

func mustParsePubkey(s string) Pubkey {
	pk, err := ParsePubkey(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// PubkeyFromBase58 decodes s strictly: no trimming, no hex fallback.
func PubkeyFromBase58(s string) (Pubkey, error) {
	var out Pubkey
	b, err := DecodeBase58(s)
	if err != nil {
		return out, err
	}
	if len(b) != PubkeyLen {
		return out, &LengthError{Got: len(b)}
	}
	copy(out[:], b)
	return out, nil
}

// ParsePubkey accepts either 64 hex characters (optionally 0x-prefixed) or
// a Base58 string, surrounding whitespace ignored.
func ParsePubkey(s string) (Pubkey, error) {
	var out Pubkey
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return out, ErrInvalidPubkey
	}

	if len(s) == 2*PubkeyLen {
		b, err := hex.DecodeString(s)
		if err == nil && len(b) == PubkeyLen {
			copy(out[:], b)
			return out, nil
		}
	}

	pk, err := PubkeyFromBase58(s)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPubkey, err)
	}
	return pk, nil
}

func (k Pubkey) Base58() string {
	return EncodeBase58(k[:])
}

func (k Pubkey) String() string {
	return k.Base58()
}
