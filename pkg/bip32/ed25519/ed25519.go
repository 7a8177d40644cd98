// Package ed25519 implements SLIP-0010 key derivation for Ed25519.
//
// Ed25519 has no public parent to public child operation, so only
// hardened children of private keys are defined.
package ed25519

import (
	"crypto/ed25519"
	"encoding/binary"
	"fmt"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/errno"
)

var ed25519Seed = []byte("ed25519 seed")

// PrivateKey is an extended Ed25519 private key. The zero value is not a
// usable key.
type PrivateKey struct {
	key       ed25519.PrivateKey
	chainCode [32]byte
}

// PublicKey is an Ed25519 public key with the chain code of the private key
// it came from. It exists for export only and cannot derive children.
type PublicKey struct {
	key       ed25519.PublicKey
	chainCode [32]byte
}

// NewMasterKey generates the master key for seed.
func NewMasterKey(seed []byte) (*PrivateKey, error) {
	if err := bip32.CheckSeed(seed); err != nil {
		return nil, err
	}
	il, ir := bip32.HMACSHA512(ed25519Seed, seed)
	return newPrivateKey(il, ir), nil
}

// NewPrivateKey rebuilds an extended private key from its 32-byte seed and
// chain code.
func NewPrivateKey(seed, chainCode []byte) (*PrivateKey, error) {
	if len(seed) != ed25519.SeedSize || len(chainCode) != 32 {
		return nil, fmt.Errorf("%w: want 32-byte seed and chain code, got %d and %d",
			errno.ErrInvalidKey, len(seed), len(chainCode))
	}
	var il, ir [32]byte
	copy(il[:], seed)
	copy(ir[:], chainCode)
	return newPrivateKey(il, ir), nil
}

// NewPublicKey wraps an exported public key and chain code.
func NewPublicKey(key, chainCode []byte) (*PublicKey, error) {
	if len(key) != ed25519.PublicKeySize || len(chainCode) != 32 {
		return nil, fmt.Errorf("%w: want 32-byte key and chain code, got %d and %d",
			errno.ErrInvalidKey, len(key), len(chainCode))
	}
	k := &PublicKey{key: append(ed25519.PublicKey(nil), key...)}
	copy(k.chainCode[:], chainCode)
	return k, nil
}

func newPrivateKey(seed, chainCode [32]byte) *PrivateKey {
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed[:]), chainCode: chainCode}
}

// ChainCode returns a copy of the chain code.
func (k *PrivateKey) ChainCode() []byte {
	out := make([]byte, 32)
	copy(out, k.chainCode[:])
	return out
}

// Derive returns the hardened child at index. Normal indices fail with
// errno.ErrNonHardenedDerivation.
func (k *PrivateKey) Derive(index bip32.Index) (*PrivateKey, error) {
	if k.key == nil {
		return nil, errno.ErrNotAPrivateKey
	}
	if !index.IsHardened() {
		return nil, fmt.Errorf("%w: index %s", errno.ErrNonHardenedDerivation, index)
	}

	var data [37]byte
	copy(data[1:33], k.key.Seed())
	binary.BigEndian.PutUint32(data[33:], uint32(index))

	il, ir := bip32.HMACSHA512(k.chainCode[:], data[:])
	return newPrivateKey(il, ir), nil
}

// DerivePath derives the descendant at path, one index at a time.
func (k *PrivateKey) DerivePath(path bip32.Path) (*PrivateKey, error) {
	return bip32.Walk(k, path, (*PrivateKey).Derive)
}

// Public returns the public key with the same chain code.
func (k *PrivateKey) Public() (*PublicKey, error) {
	if k.key == nil {
		return nil, errno.ErrNotAPrivateKey
	}
	pub := k.key.Public().(ed25519.PublicKey)
	return &PublicKey{key: append(ed25519.PublicKey(nil), pub...), chainCode: k.chainCode}, nil
}

// Bytes returns the 64-byte expanded private key: the seed followed by the
// public key.
func (k *PrivateKey) Bytes() ([]byte, error) {
	if k.key == nil {
		return nil, errno.ErrNotAPrivateKey
	}
	return append([]byte(nil), k.key...), nil
}

// Seed returns the 32-byte private key seed, the form SLIP-0010 test vectors
// list as the private key.
func (k *PrivateKey) Seed() ([]byte, error) {
	if k.key == nil {
		return nil, errno.ErrNotAPrivateKey
	}
	return k.key.Seed(), nil
}

// ChainCode returns a copy of the chain code.
func (k *PublicKey) ChainCode() []byte {
	out := make([]byte, 32)
	copy(out, k.chainCode[:])
	return out
}

// Derive always fails: Ed25519 public keys cannot derive children.
func (k *PublicKey) Derive(bip32.Index) (*PublicKey, error) {
	return nil, errno.ErrPublicKeyDerivation
}

// DerivePath always fails: Ed25519 public keys cannot derive children.
func (k *PublicKey) DerivePath(bip32.Path) (*PublicKey, error) {
	return nil, errno.ErrPublicKeyDerivation
}

// Bytes returns the 32-byte public key.
func (k *PublicKey) Bytes() ([]byte, error) {
	if k.key == nil {
		return nil, errno.ErrNotAPublicKey
	}
	return append([]byte(nil), k.key...), nil
}
