package ecc

import "math/big"

// alphabetSize is the byte alphabet Koblitz encoding interprets message
// bytes over, per spec §4.4.
const alphabetSize = 256

// maxWitness bounds the number of (x = M*A + j) candidates Encode tries
// before giving up, per spec §4.4's "fail if j exceeds A".
const maxWitness = alphabetSize

// KoblitzPoint pairs an encoded point with the witness j needed to recover
// the original integer on decode.
type KoblitzPoint struct {
	Point   Point
	Witness int
}

// koblitzChunkSize returns the number of message bytes that safely fit under
// a single encoding step for the curve's field size: ⌊log_A p⌋ − 1 bytes,
// per spec §4.4, leaving room for the multiply-by-A-and-add-j step to stay
// below p.
func koblitzChunkSize(c *EllipticCurve) int {
	n := 0
	bound := new(big.Int).Set(c.P)
	a := big.NewInt(alphabetSize)
	for bound.Cmp(a) > 0 {
		bound.Quo(bound, a)
		n++
	}
	if n <= 1 {
		return 1
	}
	return n - 1
}

// KoblitzEncode deterministically embeds m as a point on c, returning the
// point and the witness j decoding needs. c must have cofactor 1; curves
// from the …k1 family with h != 1 are rejected with EncodingError, per spec
// §4.4's "Curve constraint". The square root step (sqrtModP) handles only
// primes p ≡ 3 (mod 4); the registry's secp224k1 and secp224r1 primes are
// ≡ 1 (mod 4), so on those curves the witness search almost never finds a
// root and encoding fails with ErrEncoding.
func KoblitzEncode(c *EllipticCurve, m []byte) (KoblitzPoint, error) {
	if c.H.Cmp(big.NewInt(1)) != 0 {
		return KoblitzPoint{}, makeError(ErrEncoding, "koblitz encoding requires cofactor 1")
	}
	if len(m) == 0 {
		return KoblitzPoint{}, makeError(ErrEncoding, "cannot encode an empty message")
	}
	return koblitzEncodeChunk(c, m)
}

// KoblitzEncodeChunked splits m into fixed-size chunks bounded by
// koblitzChunkSize and encodes each independently, per spec §4.4's chunked
// mode.
func KoblitzEncodeChunked(c *EllipticCurve, m []byte) ([]KoblitzPoint, error) {
	if c.H.Cmp(big.NewInt(1)) != 0 {
		return nil, makeError(ErrEncoding, "koblitz encoding requires cofactor 1")
	}
	if len(m) == 0 {
		return nil, makeError(ErrEncoding, "cannot encode an empty message")
	}
	size := koblitzChunkSize(c)
	out := make([]KoblitzPoint, 0, (len(m)+size-1)/size)
	for i := 0; i < len(m); i += size {
		end := i + size
		if end > len(m) {
			end = len(m)
		}
		kp, err := koblitzEncodeChunk(c, m[i:end])
		if err != nil {
			return nil, err
		}
		out = append(out, kp)
	}
	return out, nil
}

func koblitzEncodeChunk(c *EllipticCurve, m []byte) (KoblitzPoint, error) {
	bigM := new(big.Int).SetBytes(m)
	a := big.NewInt(alphabetSize)
	base := new(big.Int).Mul(bigM, a)

	for j := 1; j <= maxWitness; j++ {
		x := new(big.Int).Add(base, big.NewInt(int64(j)))
		if x.Cmp(c.P) >= 0 {
			break
		}
		rhs := new(big.Int).Exp(x, big.NewInt(3), nil)
		ax := new(big.Int).Mul(c.A, x)
		rhs.Add(rhs, ax)
		rhs.Add(rhs, c.B)
		rhs.Mod(rhs, c.P)

		y, ok := sqrtModP(rhs, c.P)
		if !ok {
			continue
		}
		return KoblitzPoint{Point: NewPoint(x, y), Witness: j}, nil
	}
	return KoblitzPoint{}, makeError(ErrEncoding, "koblitz: no valid witness found within alphabet bound")
}

// KoblitzDecode recovers the original bytes from an encoded point and
// witness, per spec §4.4's Decode procedure.
func KoblitzDecode(kp KoblitzPoint) ([]byte, error) {
	if kp.Point.IsInfinity() {
		return nil, makeError(ErrDecoding, "cannot decode the point at infinity")
	}
	a := big.NewInt(alphabetSize)
	num := new(big.Int).Sub(kp.Point.X, big.NewInt(int64(kp.Witness)))
	m, rem := new(big.Int).QuoRem(num, a, new(big.Int))
	if rem.Sign() != 0 {
		return nil, makeError(ErrDecoding, "witness does not divide point coordinate exactly")
	}
	if m.Sign() == 0 {
		return []byte{0}, nil
	}

	var rev []byte
	zero := big.NewInt(0)
	digit := new(big.Int)
	for m.Cmp(zero) > 0 {
		m.QuoRem(m, a, digit)
		rev = append(rev, byte(digit.Int64()))
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}
	return out, nil
}

// KoblitzDecodeChunked decodes a sequence of (point, witness) pairs produced
// by KoblitzEncodeChunked and concatenates the results in order.
func KoblitzDecodeChunked(kps []KoblitzPoint) ([]byte, error) {
	var out []byte
	for _, kp := range kps {
		b, err := KoblitzDecode(kp)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// sqrtModP computes a square root of r modulo p for primes p ≡ 3 (mod 4),
// per spec §4.4's modular square root note: y = r^((p+1)/4) mod p, then
// verified and normalized to the smaller of {y, p-y}. Returns ok=false if r
// is not a quadratic residue mod p.
func sqrtModP(r, p *big.Int) (*big.Int, bool) {
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(r, exp, p)

	check := new(big.Int).Mul(y, y)
	check.Mod(check, p)
	if check.Cmp(new(big.Int).Mod(r, p)) != 0 {
		return nil, false
	}

	other := new(big.Int).Sub(p, y)
	if other.Cmp(y) < 0 {
		y = other
	}
	return y, true
}
