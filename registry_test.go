package ecc

import (
	"errors"
	"testing"
)

func TestGetKnownCurves(t *testing.T) {
	names := []string{
		"secp192k1", "secp192r1", "secp224k1", "secp224r1",
		"secp256k1", "secp256r1", "secp384r1", "secp521r1",
	}
	for _, name := range names {
		c, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
			continue
		}
		if !c.IsPointOnCurve(c.G) {
			t.Errorf("%s: generator is not on the curve", name)
		}
		if c.Backend != BackendJacobian {
			t.Errorf("%s: default backend = %v, want Jacobian", name, c.Backend)
		}
	}
}

func TestGetUnknownCurve(t *testing.T) {
	_, err := Get("secp999k1")
	if err == nil {
		t.Fatal("expected error for unknown curve name")
	}
	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrUnknownCurve {
		t.Errorf("got %v, want ErrUnknownCurve", err)
	}
}

func TestGetWithProjectiveCoordinatesFalse(t *testing.T) {
	c, err := Get("secp256k1", WithProjectiveCoordinates(false))
	if err != nil {
		t.Fatal(err)
	}
	if c.Backend != BackendAffine {
		t.Errorf("Backend = %v, want BackendAffine", c.Backend)
	}
}

func TestCofactor(t *testing.T) {
	h, err := Cofactor("secp256k1")
	if err != nil {
		t.Fatal(err)
	}
	if h.Int64() != 1 {
		t.Errorf("secp256k1 cofactor = %d, want 1", h.Int64())
	}
	if _, err := Cofactor("nope"); err == nil {
		t.Error("expected error for unknown curve")
	}
}
