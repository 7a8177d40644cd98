package ecdsa

import (
	"fmt"
	"math/big"

	"hdwallet-core/pkg/errno"
)

// CurveName names a supported short Weierstrass curve.
type CurveName string

const (
	Secp256k1 CurveName = "secp256k1"
	P256      CurveName = "p256"
)

// Curves lists the supported curve names.
var Curves = []CurveName{Secp256k1, P256}

// curve is the arithmetic a derivation engine needs. Scalars travel as
// fixed 32-byte big-endian values and points as 33-byte SEC1 compressed
// encodings.
type curve interface {
	name() CurveName
	seedKey() []byte
	order() *big.Int

	// validScalar reports whether 0 < k < n.
	validScalar(k *[32]byte) bool
	// validPoint reports whether p decodes to a point on the curve.
	validPoint(p *[33]byte) bool
	// publicKey returns serP(d·G).
	publicKey(d *[32]byte) [33]byte
	// tweakPrivate returns (k + d) mod n. ok is false when k >= n or the
	// sum is zero.
	tweakPrivate(k, d *[32]byte) (sum [32]byte, ok bool)
	// tweakPublic returns serP(k·G + P). ok is false when k >= n or the sum
	// is the point at infinity.
	tweakPublic(k *[32]byte, p *[33]byte) (sum [33]byte, ok bool, err error)
}

func lookupCurve(name CurveName) (curve, error) {
	var c curve
	switch name {
	case Secp256k1:
		c = secp256k1Curve{}
	case P256:
		c = newNISTP256()
	default:
		return nil, fmt.Errorf("%w %q", errno.ErrUnknownCurve, string(name))
	}

	if bits := c.order().BitLen(); bits != 256 {
		return nil, fmt.Errorf("%w: invalid curve bit size %d", errno.ErrUnknownCurve, bits)
	}
	return c, nil
}
