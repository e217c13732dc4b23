package ecc

import (
	"math/big"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// HashToInt converts a fixed-size message digest into the integer h consumed
// by Sign and Verify, per spec §4.5 ("the hash h is consumed as an
// integer"). It performs no truncation: callers passing a digest wider than
// the curve order are expected to have already truncated via TruncateHash.
//
// Grounded on dustinxie-ecc__ecdsa.go's hashToInt, generalized to accept a
// chainhash.Hash so callers can produce digests with
// github.com/decred/dcrd/chaincfg/chainhash instead of rolling their own
// big-endian decode.
func HashToInt(h chainhash.Hash) *big.Int {
	return new(big.Int).SetBytes(h[:])
}

// TruncateHash reduces an arbitrary-length digest to the leftmost bitLen
// bits, the SECG-style truncation ECDSA applies when the hash is wider than
// the curve order n (SEC1 §4.1.3, step 5). Curves in this package's registry
// top out at 521 bits, so bitLen is ordinarily c.N.BitLen().
func TruncateHash(hash []byte, bitLen int) *big.Int {
	orderBits := bitLen
	hashLen := len(hash) * 8

	ret := new(big.Int).SetBytes(hash)
	if hashLen > orderBits {
		ret.Rsh(ret, uint(hashLen-orderBits))
	}
	return ret
}
