package ecc

import "math/big"

// jacobianPoint is a projective triple (X, Y, Z) representing the affine
// point (X/Z², Y/Z³) when Z != 0, and 𝒪 when Z == 0. It is never exposed
// outside this package.
type jacobianPoint struct {
	X *big.Int
	Y *big.Int
	Z *big.Int
}

// infinityJacobian is the canonical Jacobian representation of 𝒪, following
// the (1, 1, 0) convention used throughout the pack's reference
// implementations.
func infinityJacobian() jacobianPoint {
	return jacobianPoint{X: big.NewInt(1), Y: big.NewInt(1), Z: big.NewInt(0)}
}

// isInfinity reports whether j represents the point at infinity.
func (j jacobianPoint) isInfinity() bool {
	return j.Z == nil || j.Z.Sign() == 0
}

// toJacobian lifts an affine point into Jacobian coordinates.
func toJacobian(p Point) jacobianPoint {
	if p.IsInfinity() {
		return infinityJacobian()
	}
	return jacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: big.NewInt(1),
	}
}

// toAffine lowers a Jacobian point back to affine coordinates, performing
// the single modular inversion the Jacobian backend defers until the end of
// a scalar multiplication.
func toAffine(j jacobianPoint, p *big.Int) (Point, error) {
	if j.isInfinity() {
		return Infinity, nil
	}
	zInv, err := cachedMmi(j.Z, p)
	if err != nil {
		return Infinity, err
	}
	zInv2 := new(big.Int).Mul(zInv, zInv)
	zInv2.Mod(zInv2, p)
	zInv3 := new(big.Int).Mul(zInv2, zInv)
	zInv3.Mod(zInv3, p)

	x := new(big.Int).Mul(j.X, zInv2)
	x.Mod(x, p)
	y := new(big.Int).Mul(j.Y, zInv3)
	y.Mod(y, p)
	return Point{X: x, Y: y}, nil
}
