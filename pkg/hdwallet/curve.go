package hdwallet

import (
	"fmt"

	"hdwallet-core/pkg/bip32/ecdsa"
	"hdwallet-core/pkg/bip32/ed25519"
	"hdwallet-core/pkg/errno"
)

// Curve selects a derivation scheme.
type Curve string

const (
	Secp256k1 = Curve(ecdsa.Secp256k1)
	P256      = Curve(ecdsa.P256)
	Ed25519   Curve = "ed25519"
)

// Curves lists every supported curve.
var Curves = []Curve{Secp256k1, P256, Ed25519}

func (c Curve) String() string { return string(c) }

// ParseCurve maps a configuration string to a Curve.
func ParseCurve(s string) (Curve, error) {
	for _, c := range Curves {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q", errno.ErrUnknownCurve, s)
}

// NewMasterKey generates the master key for seed on curve.
func NewMasterKey(seed []byte, curve Curve) (ExtendedPrivateKey, error) {
	switch curve {
	case Secp256k1, P256:
		k, err := ecdsa.NewMasterKey(seed, ecdsa.CurveName(curve))
		if err != nil {
			return nil, err
		}
		return &ecdsaPrivate{key: k}, nil
	case Ed25519:
		k, err := ed25519.NewMasterKey(seed)
		if err != nil {
			return nil, err
		}
		return &ed25519Private{key: k}, nil
	default:
		return nil, fmt.Errorf("%w %q", errno.ErrUnknownCurve, string(curve))
	}
}

// NewPrivateKey rebuilds a private key from exported material. For Ed25519
// key is the 32-byte seed. The result is treated as a master key.
func NewPrivateKey(curve Curve, key, chainCode []byte) (ExtendedPrivateKey, error) {
	switch curve {
	case Secp256k1, P256:
		k, err := ecdsa.NewPrivateKey(ecdsa.CurveName(curve), key, chainCode)
		if err != nil {
			return nil, err
		}
		return &ecdsaPrivate{key: k}, nil
	case Ed25519:
		k, err := ed25519.NewPrivateKey(key, chainCode)
		if err != nil {
			return nil, err
		}
		return &ed25519Private{key: k}, nil
	default:
		return nil, fmt.Errorf("%w %q", errno.ErrUnknownCurve, string(curve))
	}
}

// NewPublicKey rebuilds a public key from exported material. The result is
// treated as a master key.
func NewPublicKey(curve Curve, key, chainCode []byte) (ExtendedPublicKey, error) {
	switch curve {
	case Secp256k1, P256:
		k, err := ecdsa.NewPublicKey(ecdsa.CurveName(curve), key, chainCode)
		if err != nil {
			return nil, err
		}
		return &ecdsaPublic{key: k}, nil
	case Ed25519:
		k, err := ed25519.NewPublicKey(key, chainCode)
		if err != nil {
			return nil, err
		}
		return &ed25519Public{key: k}, nil
	default:
		return nil, fmt.Errorf("%w %q", errno.ErrUnknownCurve, string(curve))
	}
}
