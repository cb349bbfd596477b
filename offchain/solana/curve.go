package solana

import (
	"filippo.io/edwards25519"
)

// IsOnCurve reports whether k is a valid compressed ed25519 point. Keypair
// addresses are on-curve; program derived addresses are not.
func (k Pubkey) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(k[:])
	return err == nil
}
