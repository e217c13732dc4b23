package ecc

import (
	"io"
	"math/big"
	"sync"
)

// PrivateKey is a scalar d in [1, n-1] paired with the curve it was drawn
// for. The public key Q = d*G is derived lazily and cached, following
// ecutils.core's @property-backed public_key, adapted from Python's
// functools.lru_cache-on-a-property to a sync.Once-guarded field.
type PrivateKey struct {
	Curve *EllipticCurve
	D     *big.Int

	pubOnce sync.Once
	pub     Point
	pubErr  error
}

// NewPrivateKey wraps a scalar d for signing and key agreement on c. d must
// be in [1, n-1]; this is not re-validated on every operation.
func NewPrivateKey(c *EllipticCurve, d *big.Int) *PrivateKey {
	return &PrivateKey{Curve: c, D: d}
}

// PublicKey returns Q = d*G, computing it once and caching the result for
// subsequent calls.
func (priv *PrivateKey) PublicKey() (Point, error) {
	priv.pubOnce.Do(func() {
		priv.pub, priv.pubErr = priv.Curve.MultiplyPoint(priv.D, priv.Curve.G)
	})
	return priv.pub, priv.pubErr
}

// Signature is an ECDSA signature (r, s), both in [1, n-1].
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign produces a signature over the integer message hash h using rand as
// the nonce source, per spec §4.5. rand must be cryptographically secure;
// pass crypto/rand.Reader unless a test specifically needs determinism.
func Sign(rand io.Reader, priv *PrivateKey, h *big.Int) (Signature, error) {
	c := priv.Curve
	for {
		k, err := randFieldElement(rand, c.N)
		if err != nil {
			return Signature{}, err
		}

		R, err := c.MultiplyPoint(k, c.G)
		if err != nil {
			return Signature{}, err
		}
		if R.IsInfinity() {
			continue
		}
		r := new(big.Int).Mod(R.X, c.N)
		if r.Sign() == 0 {
			continue
		}

		kInv, err := cachedMmi(k, c.N)
		if err != nil {
			continue
		}
		s := new(big.Int).Mul(r, priv.D)
		s.Add(s, h)
		s.Mul(s, kInv)
		s.Mod(s, c.N)
		if s.Sign() == 0 {
			continue
		}

		return Signature{R: r, S: s}, nil
	}
}

// Verify checks sig against the integer message hash h and public key Q on
// c, per spec §4.5. It never returns an error for an invalid signature or
// out-of-range components: those report false, per spec §7's policy that
// the verifier treats bad input as a false result, not a thrown error.
func Verify(c *EllipticCurve, Q Point, h *big.Int, sig Signature) bool {
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(c.N, one)
	if sig.R.Cmp(one) < 0 || sig.R.Cmp(nMinus1) > 0 {
		return false
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(nMinus1) > 0 {
		return false
	}

	w, err := cachedMmi(sig.S, c.N)
	if err != nil {
		return false
	}
	u1 := new(big.Int).Mul(h, w)
	u1.Mod(u1, c.N)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, c.N)

	p1, err := c.MultiplyPoint(u1, c.G)
	if err != nil {
		return false
	}
	p2, err := c.MultiplyPoint(u2, Q)
	if err != nil {
		return false
	}
	X, err := c.AddPoints(p1, p2)
	if err != nil {
		return false
	}
	if X.IsInfinity() {
		return false
	}

	x := new(big.Int).Mod(X.X, c.N)
	return x.Cmp(sig.R) == 0
}

// randFieldElement samples a uniform scalar in [1, n-1], rejecting draws
// that fall outside the range rather than reducing mod n, which would bias
// the distribution. Grounded on dustinxie-ecc__ecdsa.go's randFieldElement.
func randFieldElement(rnd io.Reader, n *big.Int) (*big.Int, error) {
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	bitLen := n.BitLen()
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)

	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		if excess := byteLen*8 - bitLen; excess > 0 {
			buf[0] &= 0xff >> uint(excess)
		}
		k := new(big.Int).SetBytes(buf)
		if k.Sign() == 0 || k.Cmp(nMinus1) > 0 {
			continue
		}
		return k, nil
	}
}
