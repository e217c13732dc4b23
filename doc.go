/*
Package ecc implements elliptic curve cryptography over prime-field
short-Weierstrass curves of the form y² = x³ + ax + b (mod p).

It provides the primitive group arithmetic (point addition, doubling,
scalar multiplication, both in affine and Jacobian coordinates with an
optional bounded memoization layer) together with four constructions
built on top of it:

  - ECDSA signature generation and verification
  - Koblitz deterministic message-to-point encoding and decoding
  - Elliptic-Curve Diffie-Hellman (ECDH) shared secret derivation
  - Massey-Omura three-pass commutative encryption

Unlike a single-curve package, ecc is parameterized: curves are looked
up by name from a small SEC2 registry (secp192k1 through secp521r1) or
constructed directly from their (p, a, b, G, n, h) parameters.

This package makes no attempt at side-channel resistance. It is
intended for education, prototyping, and protocols that don't require
constant-time arithmetic. It does not implement key serialization
(DER/PEM), point compression, hash-to-curve, or certificate handling.
*/
package ecc
