package ecdsa

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

var bitcoinSeed = []byte("Bitcoin seed")

// secp256k1Curve works directly on btcec's constant-size scalar and
// Jacobian point types.
type secp256k1Curve struct{}

func (secp256k1Curve) name() CurveName { return Secp256k1 }

func (secp256k1Curve) seedKey() []byte { return bitcoinSeed }

func (secp256k1Curve) order() *big.Int { return btcec.S256().N }

func (secp256k1Curve) validScalar(k *[32]byte) bool {
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(k[:])
	return !overflow && !s.IsZero()
}

func (secp256k1Curve) validPoint(p *[33]byte) bool {
	_, err := btcec.ParsePubKey(p[:])
	return err == nil
}

func (secp256k1Curve) publicKey(d *[32]byte) [33]byte {
	_, pub := btcec.PrivKeyFromBytes(d[:])

	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

func (secp256k1Curve) tweakPrivate(k, d *[32]byte) ([32]byte, bool) {
	var tweak btcec.ModNScalar
	if overflow := tweak.SetByteSlice(k[:]); overflow {
		return [32]byte{}, false
	}

	var parent btcec.ModNScalar
	parent.SetByteSlice(d[:])
	tweak.Add(&parent)
	if tweak.IsZero() {
		return [32]byte{}, false
	}
	return tweak.Bytes(), true
}

func (secp256k1Curve) tweakPublic(k *[32]byte, p *[33]byte) ([33]byte, bool, error) {
	var tweak btcec.ModNScalar
	if overflow := tweak.SetByteSlice(k[:]); overflow {
		return [33]byte{}, false, nil
	}

	parent, err := btcec.ParsePubKey(p[:])
	if err != nil {
		return [33]byte{}, false, err
	}

	var parentJ, tweakJ, sum btcec.JacobianPoint
	parent.AsJacobian(&parentJ)
	btcec.ScalarBaseMultNonConst(&tweak, &tweakJ)
	btcec.AddNonConst(&tweakJ, &parentJ, &sum)

	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return [33]byte{}, false, nil
	}

	sum.ToAffine()
	child := btcec.NewPublicKey(&sum.X, &sum.Y)

	var out [33]byte
	copy(out[:], child.SerializeCompressed())
	return out, true, nil
}
