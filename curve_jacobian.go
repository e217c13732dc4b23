package ecc

import "math/big"

// jacobianAdd adds two Jacobian points per spec §4.3's Jacobian backend.
func (c *EllipticCurve) jacobianAdd(p, q jacobianPoint) jacobianPoint {
	if p.isInfinity() {
		return q
	}
	if q.isInfinity() {
		return p
	}

	p1z2 := new(big.Int).Mul(p.Z, p.Z)
	p1z2.Mod(p1z2, c.P)
	p2z2 := new(big.Int).Mul(q.Z, q.Z)
	p2z2.Mod(p2z2, c.P)

	u1 := new(big.Int).Mul(p.X, p2z2)
	u1.Mod(u1, c.P)
	u2 := new(big.Int).Mul(q.X, p1z2)
	u2.Mod(u2, c.P)

	p1z3 := new(big.Int).Mul(p1z2, p.Z)
	p1z3.Mod(p1z3, c.P)
	p2z3 := new(big.Int).Mul(p2z2, q.Z)
	p2z3.Mod(p2z3, c.P)

	s1 := new(big.Int).Mul(p.Y, p2z3)
	s1.Mod(s1, c.P)
	s2 := new(big.Int).Mul(q.Y, p1z3)
	s2.Mod(s2, c.P)

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) != 0 {
			return infinityJacobian()
		}
		return c.jacobianDouble(p)
	}

	h := new(big.Int).Sub(u2, u1)
	h.Mod(h, c.P)
	r := new(big.Int).Sub(s2, s1)
	r.Mod(r, c.P)

	h2 := new(big.Int).Mul(h, h)
	h2.Mod(h2, c.P)
	h3 := new(big.Int).Mul(h2, h)
	h3.Mod(h3, c.P)

	u1h2 := new(big.Int).Mul(u1, h2)
	u1h2.Mod(u1h2, c.P)

	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, h3)
	twoU1h2 := new(big.Int).Lsh(u1h2, 1)
	x3.Sub(x3, twoU1h2)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(u1h2, x3)
	y3.Mul(y3, r)
	s1h3 := new(big.Int).Mul(s1, h3)
	y3.Sub(y3, s1h3)
	y3.Mod(y3, c.P)

	z3 := new(big.Int).Mul(h, p.Z)
	z3.Mul(z3, q.Z)
	z3.Mod(z3, c.P)

	return jacobianPoint{X: x3, Y: y3, Z: z3}
}

// jacobianDouble doubles a Jacobian point per spec §4.3's Jacobian backend.
func (c *EllipticCurve) jacobianDouble(p jacobianPoint) jacobianPoint {
	if p.isInfinity() {
		return p
	}
	if p.Y.Sign() == 0 {
		return infinityJacobian()
	}

	ySq := new(big.Int).Mul(p.Y, p.Y)
	ySq.Mod(ySq, c.P)

	s := new(big.Int).Mul(p.X, ySq)
	s.Mul(s, big.NewInt(4))
	s.Mod(s, c.P)

	zSq := new(big.Int).Mul(p.Z, p.Z)
	zSq.Mod(zSq, c.P)
	zQuad := new(big.Int).Mul(zSq, zSq)
	zQuad.Mod(zQuad, c.P)

	m := new(big.Int).Mul(p.X, p.X)
	m.Mul(m, big.NewInt(3))
	aZ4 := new(big.Int).Mul(c.A, zQuad)
	m.Add(m, aZ4)
	m.Mod(m, c.P)

	x3 := new(big.Int).Mul(m, m)
	twoS := new(big.Int).Lsh(s, 1)
	x3.Sub(x3, twoS)
	x3.Mod(x3, c.P)

	ySq2 := new(big.Int).Mul(ySq, ySq)
	ySq2.Mod(ySq2, c.P)
	eightYSq2 := new(big.Int).Mul(ySq2, big.NewInt(8))

	y3 := new(big.Int).Sub(s, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, eightYSq2)
	y3.Mod(y3, c.P)

	z3 := new(big.Int).Mul(p.Y, p.Z)
	z3.Mul(z3, big.NewInt(2))
	z3.Mod(z3, c.P)

	return jacobianPoint{X: x3, Y: y3, Z: z3}
}

// jacobianMultiply performs left-to-right double-and-add in Jacobian
// coordinates, deferring the single modular inversion needed to recover
// affine coordinates until the caller converts the result back.
func (c *EllipticCurve) jacobianMultiply(k *big.Int, p jacobianPoint) jacobianPoint {
	result := infinityJacobian()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = c.jacobianDouble(result)
		if k.Bit(i) == 1 {
			result = c.jacobianAdd(result, p)
		}
	}
	return result
}

// jacobianAddAffine is the AddPoints entry point for the Jacobian backend:
// lift both operands, add, and convert back to affine.
func (c *EllipticCurve) jacobianAddAffine(p, q Point) (Point, error) {
	r := c.jacobianAdd(toJacobian(p), toJacobian(q))
	return toAffine(r, c.P)
}

// jacobianDoubleAffine is the DoublePoint entry point for the Jacobian
// backend.
func (c *EllipticCurve) jacobianDoubleAffine(p Point) (Point, error) {
	r := c.jacobianDouble(toJacobian(p))
	return toAffine(r, c.P)
}

// jacobianMultiplyAffine is the MultiplyPoint entry point for the Jacobian
// backend: exactly one modular inversion is paid here, at the end.
func (c *EllipticCurve) jacobianMultiplyAffine(k *big.Int, p Point) (Point, error) {
	r := c.jacobianMultiply(k, toJacobian(p))
	return toAffine(r, c.P)
}
