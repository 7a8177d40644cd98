package ecdsa

import (
	"crypto/elliptic"
	"math/big"
)

var nist256p1Seed = []byte("Nist256p1 seed")

// nistCurve adapts a crypto/elliptic curve. The legacy affine API represents
// the point at infinity as (0, 0).
type nistCurve struct {
	id  CurveName
	key []byte
	c   elliptic.Curve
	n   *big.Int
}

func newNISTP256() nistCurve {
	c := elliptic.P256()
	return nistCurve{id: P256, key: nist256p1Seed, c: c, n: c.Params().N}
}

func (nc nistCurve) name() CurveName { return nc.id }

func (nc nistCurve) seedKey() []byte { return nc.key }

func (nc nistCurve) order() *big.Int { return nc.n }

func (nc nistCurve) validScalar(k *[32]byte) bool {
	s := new(big.Int).SetBytes(k[:])
	return s.Sign() != 0 && s.Cmp(nc.n) < 0
}

func (nc nistCurve) validPoint(p *[33]byte) bool {
	x, _ := elliptic.UnmarshalCompressed(nc.c, p[:])
	return x != nil
}

func (nc nistCurve) publicKey(d *[32]byte) [33]byte {
	x, y := nc.c.ScalarBaseMult(d[:])

	var out [33]byte
	copy(out[:], elliptic.MarshalCompressed(nc.c, x, y))
	return out
}

func (nc nistCurve) tweakPrivate(k, d *[32]byte) ([32]byte, bool) {
	tweak := new(big.Int).SetBytes(k[:])
	if tweak.Cmp(nc.n) >= 0 {
		return [32]byte{}, false
	}

	sum := tweak.Add(tweak, new(big.Int).SetBytes(d[:]))
	sum.Mod(sum, nc.n)
	if sum.Sign() == 0 {
		return [32]byte{}, false
	}

	var out [32]byte
	sum.FillBytes(out[:])
	return out, true
}

func (nc nistCurve) tweakPublic(k *[32]byte, p *[33]byte) ([33]byte, bool, error) {
	if new(big.Int).SetBytes(k[:]).Cmp(nc.n) >= 0 {
		return [33]byte{}, false, nil
	}

	px, py := elliptic.UnmarshalCompressed(nc.c, p[:])
	if px == nil {
		return [33]byte{}, false, errInvalidPoint
	}

	kx, ky := nc.c.ScalarBaseMult(k[:])
	x, y := nc.c.Add(kx, ky, px, py)
	if x.Sign() == 0 && y.Sign() == 0 {
		return [33]byte{}, false, nil
	}

	var out [33]byte
	copy(out[:], elliptic.MarshalCompressed(nc.c, x, y))
	return out, true, nil
}
