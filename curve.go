package ecc

import (
	"math/big"

	"github.com/curvekit/goecc/internal/elog"
)

// Backend selects the internal coordinate system a curve uses during scalar
// multiplication. It is fixed at curve construction and dispatched once per
// call rather than per bit of the scalar.
type Backend int

const (
	// BackendAffine performs every intermediate add/double in affine
	// coordinates, paying one modular inversion per operation.
	BackendAffine Backend = iota

	// BackendJacobian performs intermediate add/double in Jacobian
	// projective coordinates, paying exactly one modular inversion per
	// multiply call.
	BackendJacobian
)

// EllipticCurve is a short-Weierstrass curve y² = x³ + ax + b (mod p) with a
// distinguished generator G of prime order n and cofactor h.
type EllipticCurve struct {
	P *big.Int
	A *big.Int
	B *big.Int
	G Point
	N *big.Int
	H *big.Int

	Backend Backend

	// Name identifies the curve for cache-key and log purposes. It is empty
	// for curves built directly with NewCurve rather than obtained from the
	// registry.
	Name string

	cache *arithCache
}

// NewCurve constructs an EllipticCurve from explicit parameters. Callers
// building curves outside the registry are responsible for ensuring
// 4a³ + 27b² ≢ 0 (mod p) and that G has order n.
func NewCurve(p, a, b *big.Int, g Point, n, h *big.Int, backend Backend) *EllipticCurve {
	c := &EllipticCurve{
		P:       p,
		A:       a,
		B:       b,
		G:       g,
		N:       n,
		H:       h,
		Backend: backend,
	}
	c.cache = newArithCache(c)
	return c
}

// IsPointOnCurve reports whether p satisfies y² ≡ x³ + ax + b (mod P). It
// returns false for the point at infinity.
func (c *EllipticCurve) IsPointOnCurve(p Point) bool {
	if p.IsInfinity() {
		return false
	}
	left := new(big.Int).Mul(p.Y, p.Y)
	left.Mod(left, c.P)

	right := new(big.Int).Mul(p.X, p.X)
	right.Mul(right, p.X)
	ax := new(big.Int).Mul(c.A, p.X)
	right.Add(right, ax)
	right.Add(right, c.B)
	right.Mod(right, c.P)

	return left.Cmp(right) == 0
}

// AddPoints returns p + q on the curve.
func (c *EllipticCurve) AddPoints(p, q Point) (Point, error) {
	return c.cache.add(p, q)
}

// DoublePoint returns 2*p on the curve.
func (c *EllipticCurve) DoublePoint(p Point) (Point, error) {
	return c.cache.double(p)
}

// MultiplyPoint returns k*p on the curve using left-to-right double-and-add
// over the binary expansion of k. k must be non-negative; k >= N is
// permitted and produces the mathematically correct multiple.
func (c *EllipticCurve) MultiplyPoint(k *big.Int, p Point) (Point, error) {
	if k.Sign() < 0 {
		return Infinity, makeError(ErrRange, "scalar must be non-negative")
	}
	return c.cache.multiply(k, p)
}

func (c *EllipticCurve) addPointsUncached(p, q Point) (Point, error) {
	elog.DefaultLogger().Debugw("add_points", "curve", c.Name, "backend", c.Backend)
	if c.Backend == BackendJacobian {
		return c.jacobianAddAffine(p, q)
	}
	return c.affineAdd(p, q)
}

func (c *EllipticCurve) doublePointUncached(p Point) (Point, error) {
	elog.DefaultLogger().Debugw("double_point", "curve", c.Name, "backend", c.Backend)
	if c.Backend == BackendJacobian {
		return c.jacobianDoubleAffine(p)
	}
	return c.affineDouble(p)
}

func (c *EllipticCurve) multiplyPointUncached(k *big.Int, p Point) (Point, error) {
	elog.DefaultLogger().Debugw("multiply_point", "curve", c.Name, "backend", c.Backend, "bits", k.BitLen())
	if k.Sign() == 0 || p.IsInfinity() {
		return Infinity, nil
	}
	if c.Backend == BackendJacobian {
		return c.jacobianMultiplyAffine(k, p)
	}
	return c.affineMultiply(k, p)
}
