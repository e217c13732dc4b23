package ecc_test

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/curvekit/goecc"
)

// This package never hashes a message itself; callers are responsible for
// producing the integer h that Sign and Verify consume. This example shows
// the expected shape of that boundary using sha3.Sum256 and
// ecc.TruncateHash.
func Example_signAndVerify() {
	c, err := ecc.Get("secp256k1")
	if err != nil {
		panic(err)
	}

	priv := ecc.NewPrivateKey(c, big.NewInt(424242))
	pub, err := priv.PublicKey()
	if err != nil {
		panic(err)
	}

	digest := sha3.Sum256([]byte("attack at dawn"))
	h := ecc.TruncateHash(digest[:], c.N.BitLen())

	sig, err := ecc.Sign(rand.Reader, priv, h)
	if err != nil {
		panic(err)
	}

	fmt.Println(ecc.Verify(c, pub, h, sig))
	// Output: true
}
