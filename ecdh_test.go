package ecc

import (
	"math/big"
	"testing"
)

// TestR4S4ECDHSharedSecretSymmetric covers R4 and S4: dA*(dB*G) equals
// dB*(dA*G) on secp192k1 with dA = 7, dB = 21.
func TestR4S4ECDHSharedSecretSymmetric(t *testing.T) {
	c := mustCurve(t, "secp192k1")
	alice := NewECDHKeyPair(c, big.NewInt(7))
	bob := NewECDHKeyPair(c, big.NewInt(21))

	aliceQ, err := alice.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	bobQ, err := bob.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	secretFromAlice, err := alice.ComputeSharedSecret(bobQ)
	if err != nil {
		t.Fatal(err)
	}
	secretFromBob, err := bob.ComputeSharedSecret(aliceQ)
	if err != nil {
		t.Fatal(err)
	}

	if !secretFromAlice.Equal(secretFromBob) {
		t.Errorf("dA*(dB*G) = %v, dB*(dA*G) = %v, want equal", secretFromAlice, secretFromBob)
	}
}
