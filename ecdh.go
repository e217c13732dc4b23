package ecc

import "math/big"

// ECDHKeyPair wraps a private scalar for Diffie-Hellman key agreement,
// generalizing ModChain-secp256k1's single-curve GenerateSharedSecret to any
// registry curve, per spec §4.6.
type ECDHKeyPair struct {
	priv *PrivateKey
}

// NewECDHKeyPair wraps d as a key-agreement party on c.
func NewECDHKeyPair(c *EllipticCurve, d *big.Int) *ECDHKeyPair {
	return &ECDHKeyPair{priv: NewPrivateKey(c, d)}
}

// PublicKey returns this party's public point Q = d*G.
func (kp *ECDHKeyPair) PublicKey() (Point, error) {
	return kp.priv.PublicKey()
}

// ComputeSharedSecret returns d*Q_other, the shared point both parties
// arrive at independently. The caller is responsible for deriving a
// symmetric key from it (e.g. hashing the x-coordinate); this package does
// not perform a KDF, per spec §4.6.
func (kp *ECDHKeyPair) ComputeSharedSecret(other Point) (Point, error) {
	return kp.priv.Curve.MultiplyPoint(kp.priv.D, other)
}
