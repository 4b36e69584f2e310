// Package domain implements the registration state machine and address policy.
package domain

const (
	minAddressLen = 32
	maxAddressLen = 44
)

// base58Alphabet is the Bitcoin-style Base58 set used by Solana addresses:
// alphanumerics minus the ambiguous 0, O, I and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Set = func() [256]bool {
	var set [256]bool
	for i := 0; i < len(base58Alphabet); i++ {
		set[base58Alphabet[i]] = true
	}
	return set
}()

// IsValidAddress reports whether text is a plausible Solana wallet address:
// 32 to 44 characters, all from the Base58 alphabet. The input is checked
// as-is; callers trim surrounding whitespace once before validation.
func IsValidAddress(text string) bool {
	if len(text) < minAddressLen || len(text) > maxAddressLen {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !base58Set[text[i]] {
			return false
		}
	}
	return true
}
