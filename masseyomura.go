package ecc

import "math/big"

// MasseyOmuraParty holds one side's private exponent e in [1, n-1] for the
// three-pass Massey-Omura protocol, per spec §4.7. Both parties use the same
// type; which instance is "A" or "B" is purely a matter of which one calls
// FirstEncryptionStep first.
type MasseyOmuraParty struct {
	Curve *EllipticCurve
	E     *big.Int
}

// NewMasseyOmuraParty wraps a private exponent e for curve c.
func NewMasseyOmuraParty(c *EllipticCurve, e *big.Int) *MasseyOmuraParty {
	return &MasseyOmuraParty{Curve: c, E: e}
}

// FirstEncryptionStep applies this party's encryption layer to a message
// point: C1 = e*M.
func (p *MasseyOmuraParty) FirstEncryptionStep(m Point) (Point, error) {
	return p.Curve.MultiplyPoint(p.E, m)
}

// SecondEncryptionStep applies this party's encryption layer on top of the
// other party's: C2 = e*C1.
func (p *MasseyOmuraParty) SecondEncryptionStep(c1 Point) (Point, error) {
	return p.Curve.MultiplyPoint(p.E, c1)
}

// PartialDecryptionStep removes this party's own encryption layer: d = e^-1
// mod n, result = d*C. The same method is called by both parties, each with
// their own instance, to strip their own layer in turn; the package does not
// enforce call ordering, per spec §4.7 — calling it out of order produces a
// wrong point but never panics.
func (p *MasseyOmuraParty) PartialDecryptionStep(c Point) (Point, error) {
	d, err := cachedMmi(p.E, p.Curve.N)
	if err != nil {
		return Infinity, err
	}
	return p.Curve.MultiplyPoint(d, c)
}
