package ecc

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func mustCurve(t *testing.T, name string) *EllipticCurve {
	t.Helper()
	c, err := Get(name)
	if err != nil {
		t.Fatalf("Get(%q): %v", name, err)
	}
	return c
}

// TestP1Identity covers P1: add_points(P, O) = P and add_points(O, P) = P.
func TestP1Identity(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	got, err := c.AddPoints(c.G, Infinity)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(c.G) {
		t.Errorf("G + O = %v, want %v", got, c.G)
	}
	got, err = c.AddPoints(Infinity, c.G)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(c.G) {
		t.Errorf("O + G = %v, want %v", got, c.G)
	}
}

// TestP2Commutative covers P2: add_points(P, Q) = add_points(Q, P).
func TestP2Commutative(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	q, err := c.MultiplyPoint(big.NewInt(5), c.G)
	if err != nil {
		t.Fatal(err)
	}
	pq, err := c.AddPoints(c.G, q)
	if err != nil {
		t.Fatal(err)
	}
	qp, err := c.AddPoints(q, c.G)
	if err != nil {
		t.Fatal(err)
	}
	if !pq.Equal(qp) {
		t.Errorf("G+Q = %v, Q+G = %v, want equal", pq, qp)
	}
}

// TestP3Opposite covers P3: add_points(P, -P) = O.
func TestP3Opposite(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	negG := neg(c.G, c.P)
	sum, err := c.AddPoints(c.G, negG)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.IsInfinity() {
		t.Errorf("G + (-G) = %v, want infinity", sum)
	}
}

// TestP4Associative covers P4 over three small multiples of G.
func TestP4Associative(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	p, _ := c.MultiplyPoint(big.NewInt(3), c.G)
	q, _ := c.MultiplyPoint(big.NewInt(5), c.G)
	r, _ := c.MultiplyPoint(big.NewInt(7), c.G)

	pq, err := c.AddPoints(p, q)
	if err != nil {
		t.Fatal(err)
	}
	left, err := c.AddPoints(pq, r)
	if err != nil {
		t.Fatal(err)
	}

	qr, err := c.AddPoints(q, r)
	if err != nil {
		t.Fatal(err)
	}
	right, err := c.AddPoints(p, qr)
	if err != nil {
		t.Fatal(err)
	}

	if !left.Equal(right) {
		t.Errorf("(P+Q)+R != P+(Q+R):\n%s", spew.Sdump(left, right))
	}
}

// TestP5DoubleEqualsAdd covers P5: double_point(P) = add_points(P, P).
func TestP5DoubleEqualsAdd(t *testing.T) {
	for _, backend := range []Backend{BackendAffine, BackendJacobian} {
		c, err := Get("secp192k1", WithProjectiveCoordinates(backend == BackendJacobian))
		if err != nil {
			t.Fatal(err)
		}
		dbl, err := c.DoublePoint(c.G)
		if err != nil {
			t.Fatal(err)
		}
		add, err := c.AddPoints(c.G, c.G)
		if err != nil {
			t.Fatal(err)
		}
		if !dbl.Equal(add) {
			t.Errorf("backend %v: double(G) = %v, G+G = %v", backend, dbl, add)
		}
	}
}

// TestP6OrderAnnihilates covers P6: multiply_point(n, G) = O.
func TestP6OrderAnnihilates(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	got, err := c.MultiplyPoint(c.N, c.G)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsInfinity() {
		t.Errorf("n*G = %v, want infinity", got)
	}
}

// TestP7ReductionModN covers P7: multiply_point(k, P) = multiply_point(k mod n, P).
func TestP7ReductionModN(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	k := new(big.Int).Add(c.N, big.NewInt(9))
	kModN := new(big.Int).Mod(k, c.N)

	got, err := c.MultiplyPoint(k, c.G)
	if err != nil {
		t.Fatal(err)
	}
	want, err := c.MultiplyPoint(kModN, c.G)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("(n+9)*G = %v, 9*G = %v, want equal", got, want)
	}
}

// TestP8OnCurve covers P8: is_point_on_curve(P) for P = G and d*G.
func TestP8OnCurve(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	if !c.IsPointOnCurve(c.G) {
		t.Error("G is not reported on-curve")
	}
	for _, d := range []int64{1, 2, 3, 99, 12345} {
		p, err := c.MultiplyPoint(big.NewInt(d), c.G)
		if err != nil {
			t.Fatalf("d=%d: %v", d, err)
		}
		if !c.IsPointOnCurve(p) {
			t.Errorf("d=%d: %v not reported on-curve", d, p)
		}
	}
}

// TestB3ZeroScalar covers B3: scalar 0 on any point yields O.
func TestB3ZeroScalar(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	got, err := c.MultiplyPoint(big.NewInt(0), c.G)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsInfinity() {
		t.Errorf("0*G = %v, want infinity", got)
	}
}

// TestB4DoubleTwoTorsion covers B4: doubling a point with y = 0 yields O.
func TestB4DoubleTwoTorsion(t *testing.T) {
	// y^2 = x^3 + x over p = 23 has a 2-torsion point at y = 0: x^3 + x = 0
	// mod 23 has root x = 0 (0^3+0=0), giving the point (0, 0).
	p := big.NewInt(23)
	c := NewCurve(p, big.NewInt(1), big.NewInt(0), NewPoint(big.NewInt(1), big.NewInt(5)), big.NewInt(1), big.NewInt(1), BackendAffine)
	twoTorsion := NewPoint(big.NewInt(0), big.NewInt(0))
	if !c.IsPointOnCurve(twoTorsion) {
		t.Fatal("test fixture point is not on the curve; fixture is wrong")
	}
	got, err := c.DoublePoint(twoTorsion)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsInfinity() {
		t.Errorf("double((0,0)) = %v, want infinity", got)
	}
}

// TestS1Secp192k1Doubling covers S1: 2*G equals add_points(G, G) on
// secp192k1, and both satisfy the curve equation.
func TestS1Secp192k1Doubling(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	dbl, err := c.MultiplyPoint(big.NewInt(2), c.G)
	if err != nil {
		t.Fatal(err)
	}
	add, err := c.AddPoints(c.G, c.G)
	if err != nil {
		t.Fatal(err)
	}
	if !dbl.Equal(add) {
		t.Fatalf("2*G = %v, G+G = %v, want equal", dbl, add)
	}
	if !c.IsPointOnCurve(dbl) {
		t.Error("2*G is not on the curve")
	}
}

// TestS6BumpedYNotOnCurve covers S6: a valid point with y bumped by 1 is
// reported off-curve.
func TestS6BumpedYNotOnCurve(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	bumped := NewPoint(new(big.Int).Set(c.G.X), new(big.Int).Add(c.G.Y, big.NewInt(1)))
	if c.IsPointOnCurve(bumped) {
		t.Error("bumped point unexpectedly reported on-curve")
	}
}

func TestAffineAndJacobianAgree(t *testing.T) {
	affine, err := Get("secp256r1", WithProjectiveCoordinates(false))
	if err != nil {
		t.Fatal(err)
	}
	jacobian, err := Get("secp256r1", WithProjectiveCoordinates(true))
	if err != nil {
		t.Fatal(err)
	}
	k := big.NewInt(123456789)
	a, err := affine.MultiplyPoint(k, affine.G)
	if err != nil {
		t.Fatal(err)
	}
	j, err := jacobian.MultiplyPoint(k, jacobian.G)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(j) {
		t.Errorf("affine k*G = %v, jacobian k*G = %v, want equal", a, j)
	}
}
