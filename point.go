package ecc

import "math/big"

// Point is a value on an elliptic curve: either the point at infinity 𝒪
// (both X and Y nil) or an affine pair (X, Y) with 0 <= X, Y < p. Points are
// immutable; every operation that produces one returns a new value.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Infinity is the point at infinity, the identity element of the curve
// group.
var Infinity = Point{}

// NewPoint constructs an affine point from its coordinates.
func NewPoint(x, y *big.Int) Point {
	return Point{X: x, Y: y}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X == nil || p.Y == nil
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String renders the point for logging and test failure output.
func (p Point) String() string {
	if p.IsInfinity() {
		return "Point(𝒪)"
	}
	return "Point(" + p.X.String() + ", " + p.Y.String() + ")"
}

// neg returns -p, the point with the same X and Y' = (fieldOrder - p.Y) mod
// fieldOrder. neg does not validate that p lies on any particular curve.
func neg(p Point, fieldOrder *big.Int) Point {
	if p.IsInfinity() {
		return Infinity
	}
	y := new(big.Int).Sub(fieldOrder, p.Y)
	y.Mod(y, fieldOrder)
	return Point{X: new(big.Int).Set(p.X), Y: y}
}
