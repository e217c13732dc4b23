package ecc

import "math/big"

// gcd returns the greatest common divisor of m and n. It always returns a
// non-negative integer; gcd(0, 0) = 0.
func gcd(m, n *big.Int) *big.Int {
	g, _, _ := egcd(m, n)
	return g
}

// egcd computes the extended Euclidean algorithm: it returns g, x, y such
// that g = gcd(|m|, |n|) and m*x + n*y = g. Zero inputs are handled without
// division by zero.
func egcd(m, n *big.Int) (g, x, y *big.Int) {
	if m.Sign() == 0 && n.Sign() == 0 {
		return big.NewInt(0), big.NewInt(0), big.NewInt(0)
	}

	oldR, r := new(big.Int).Set(m), new(big.Int).Set(n)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)

		newR := new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldR, r = r, newR

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, newS

		newT := new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
		oldT, t = t, newT
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// mmi returns the modular multiplicative inverse of a modulo m, in the
// range [0, m). It fails with ErrNoModularInverse when gcd(a, m) != 1.
func mmi(a, m *big.Int) (*big.Int, error) {
	g, x, _ := egcd(a, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, makeError(ErrNoModularInverse, "no modular inverse: gcd(a, m) != 1")
	}
	x.Mod(x, m)
	if x.Sign() < 0 {
		x.Add(x, m)
	}
	return x, nil
}
