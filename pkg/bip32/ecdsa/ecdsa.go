// Package ecdsa implements BIP32 key derivation on secp256k1 and NIST P-256.
//
// Both curves follow the same construction and differ only in their
// arithmetic and in the HMAC key used for master key generation
// ("Bitcoin seed" and "Nist256p1 seed"). Private keys support hardened and
// normal children, public keys support normal children only.
package ecdsa

import (
	"encoding/binary"
	"errors"
	"fmt"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/errno"
)

var errInvalidPoint = errors.New("point is not on the curve")

// PrivateKey is an extended private key: a scalar in [1, n-1] and a chain
// code. The zero value is not a usable key.
type PrivateKey struct {
	curve     curve
	key       [32]byte
	chainCode [32]byte
}

// PublicKey is an extended public key: a compressed curve point and a chain
// code. The zero value is not a usable key.
type PublicKey struct {
	curve     curve
	key       [33]byte
	chainCode [32]byte
}

// NewMasterKey generates the master key for seed on the named curve.
func NewMasterKey(seed []byte, name CurveName) (*PrivateKey, error) {
	if err := bip32.CheckSeed(seed); err != nil {
		return nil, err
	}
	c, err := lookupCurve(name)
	if err != nil {
		return nil, err
	}

	// An invalid IL is re-hashed: the previous output becomes the data.
	il, ir := bip32.HMACSHA512(c.seedKey(), seed)
	for !c.validScalar(&il) {
		il, ir = bip32.HMACSHA512(c.seedKey(), il[:], ir[:])
	}

	return &PrivateKey{curve: c, key: il, chainCode: ir}, nil
}

// NewPrivateKey rebuilds an extended private key from its exported scalar
// and chain code.
func NewPrivateKey(name CurveName, key, chainCode []byte) (*PrivateKey, error) {
	c, err := lookupCurve(name)
	if err != nil {
		return nil, err
	}
	if len(key) != 32 || len(chainCode) != 32 {
		return nil, fmt.Errorf("%w: want 32-byte key and chain code, got %d and %d",
			errno.ErrInvalidKey, len(key), len(chainCode))
	}

	k := &PrivateKey{curve: c}
	copy(k.key[:], key)
	copy(k.chainCode[:], chainCode)
	if !c.validScalar(&k.key) {
		return nil, fmt.Errorf("%w: scalar out of range", errno.ErrInvalidKey)
	}
	return k, nil
}

// NewPublicKey rebuilds an extended public key from its compressed point and
// chain code.
func NewPublicKey(name CurveName, key, chainCode []byte) (*PublicKey, error) {
	c, err := lookupCurve(name)
	if err != nil {
		return nil, err
	}
	if len(key) != 33 || len(chainCode) != 32 {
		return nil, fmt.Errorf("%w: want 33-byte point and 32-byte chain code, got %d and %d",
			errno.ErrInvalidKey, len(key), len(chainCode))
	}

	k := &PublicKey{curve: c}
	copy(k.key[:], key)
	copy(k.chainCode[:], chainCode)
	if !c.validPoint(&k.key) {
		return nil, fmt.Errorf("%w: %v", errno.ErrInvalidKey, errInvalidPoint)
	}
	return k, nil
}

// childData lays out the 37-byte HMAC input: a 33-byte key field followed by
// the big-endian index.
func childData(keyField []byte, index bip32.Index) [37]byte {
	var data [37]byte
	copy(data[33-len(keyField):33], keyField)
	binary.BigEndian.PutUint32(data[33:], uint32(index))
	return data
}

// nextCandidate returns the HMAC input for the next attempt after an
// output whose IL was rejected: 0x01 || IR || index.
func nextCandidate(data [37]byte, ir [32]byte) [37]byte {
	data[0] = 0x01
	copy(data[1:33], ir[:])
	return data
}

// Curve returns the curve the key is bound to.
func (k *PrivateKey) Curve() CurveName {
	if k.curve == nil {
		return ""
	}
	return k.curve.name()
}

// ChainCode returns a copy of the chain code.
func (k *PrivateKey) ChainCode() []byte {
	out := make([]byte, 32)
	copy(out, k.chainCode[:])
	return out
}

// Derive returns the child private key at index (CKDpriv).
func (k *PrivateKey) Derive(index bip32.Index) (*PrivateKey, error) {
	if k.curve == nil {
		return nil, errno.ErrNotAPrivateKey
	}

	var data [37]byte
	if index.IsHardened() {
		data = childData(k.key[:], index)
	} else {
		pub := k.curve.publicKey(&k.key)
		data = childData(pub[:], index)
	}

	for {
		il, ir := bip32.HMACSHA512(k.chainCode[:], data[:])
		if d, ok := k.curve.tweakPrivate(&il, &k.key); ok {
			return &PrivateKey{curve: k.curve, key: d, chainCode: ir}, nil
		}
		data = nextCandidate(data, ir)
	}
}

// DerivePath derives the descendant at path, one index at a time.
func (k *PrivateKey) DerivePath(path bip32.Path) (*PrivateKey, error) {
	return bip32.Walk(k, path, (*PrivateKey).Derive)
}

// Public returns the extended public key with the same chain code.
func (k *PrivateKey) Public() (*PublicKey, error) {
	if k.curve == nil {
		return nil, errno.ErrNotAPrivateKey
	}
	return &PublicKey{curve: k.curve, key: k.curve.publicKey(&k.key), chainCode: k.chainCode}, nil
}

// Bytes returns the 32-byte big-endian private scalar.
func (k *PrivateKey) Bytes() ([]byte, error) {
	if k.curve == nil {
		return nil, errno.ErrNotAPrivateKey
	}
	out := make([]byte, 32)
	copy(out, k.key[:])
	return out, nil
}

// Curve returns the curve the key is bound to.
func (k *PublicKey) Curve() CurveName {
	if k.curve == nil {
		return ""
	}
	return k.curve.name()
}

// ChainCode returns a copy of the chain code.
func (k *PublicKey) ChainCode() []byte {
	out := make([]byte, 32)
	copy(out, k.chainCode[:])
	return out
}

// Derive returns the child public key at index (CKDpub). Hardened indices
// need the private key and fail with errno.ErrHardenedDerivation.
func (k *PublicKey) Derive(index bip32.Index) (*PublicKey, error) {
	if k.curve == nil {
		return nil, errno.ErrNotAPublicKey
	}
	if index.IsHardened() {
		return nil, fmt.Errorf("%w: index %s", errno.ErrHardenedDerivation, index)
	}

	data := childData(k.key[:], index)
	for {
		il, ir := bip32.HMACSHA512(k.chainCode[:], data[:])
		point, ok, err := k.curve.tweakPublic(&il, &k.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
		}
		if ok {
			return &PublicKey{curve: k.curve, key: point, chainCode: ir}, nil
		}
		data = nextCandidate(data, ir)
	}
}

// DerivePath derives the descendant at path, one index at a time.
func (k *PublicKey) DerivePath(path bip32.Path) (*PublicKey, error) {
	return bip32.Walk(k, path, (*PublicKey).Derive)
}

// Bytes returns the 33-byte SEC1 compressed point.
func (k *PublicKey) Bytes() ([]byte, error) {
	if k.curve == nil {
		return nil, errno.ErrNotAPublicKey
	}
	out := make([]byte, 33)
	copy(out, k.key[:])
	return out, nil
}
