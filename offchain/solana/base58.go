package solana

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/mr-tron/base58"
)

// Base58Alphabet is the Bitcoin alphabet used by Solana addresses. The
// position of a character is its digit value.
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var ErrInvalidCharacter = errors.New("invalid base58 character")

var bigRadix = big.NewInt(58)

// InvalidCharacterError reports the first rune of an input that is not part
// of Base58Alphabet. Offset is the byte offset of that rune.
type InvalidCharacterError struct {
	Char   rune
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base58 character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

func base58Digit(r rune) int {
	if r > 0x7f {
		return -1
	}
	return strings.IndexByte(Base58Alphabet, byte(r))
}

// IsBase58 reports whether every rune of s is in Base58Alphabet. The empty
// string is trivially Base58.
func IsBase58(s string) bool {
	for _, r := range s {
		if base58Digit(r) < 0 {
			return false
		}
	}
	return true
}

// DecodeBase58 decodes s as a big-endian base-58 number. Every leading '1'
// yields one leading zero byte in the output. The empty string decodes to an
// empty slice.
func DecodeBase58(s string) ([]byte, error) {
	num := new(big.Int)
	digit := new(big.Int)
	for i, r := range s {
		d := base58Digit(r)
		if d < 0 {
			return nil, &InvalidCharacterError{Char: r, Offset: i}
		}
		num.Mul(num, bigRadix)
		num.Add(num, digit.SetInt64(int64(d)))
	}

	magnitude := num.Bytes()
	pad := len(s) - len(strings.TrimLeft(s, Base58Alphabet[:1]))

	out := make([]byte, pad, pad+len(magnitude))
	return append(out, magnitude...), nil
}

func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}
