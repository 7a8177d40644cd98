package hdwallet

import (
	"hdwallet-core/pkg/bip32"
)

// ExtendedKey is the part shared by private and public extended keys of
// every curve.
type ExtendedKey interface {
	// Curve returns the curve the key belongs to.
	Curve() Curve
	// ChainCode returns a copy of the 32-byte chain code.
	ChainCode() []byte
	// Bytes returns the raw key material (see the curve packages for widths).
	Bytes() ([]byte, error)
	// IsPrivate reports whether the key holds private material.
	IsPrivate() bool

	// Depth is the number of derivation steps from the master key.
	Depth() int
	// ChildIndex is the index this key was derived at (0 for the master).
	ChildIndex() bip32.Index
	// ParentFingerprint identifies the parent key (zero for the master).
	ParentFingerprint() [4]byte
}

// ExtendedPrivateKey can derive private children and export its public half.
type ExtendedPrivateKey interface {
	ExtendedKey

	// Derive returns the child at index.
	Derive(index bip32.Index) (ExtendedPrivateKey, error)
	// DerivePath derives every index of path in order.
	DerivePath(path bip32.Path) (ExtendedPrivateKey, error)
	// Public returns the matching extended public key.
	Public() (ExtendedPublicKey, error)
}

// ExtendedPublicKey can derive public children where the curve allows it.
type ExtendedPublicKey interface {
	ExtendedKey

	// Derive returns the child at index.
	Derive(index bip32.Index) (ExtendedPublicKey, error)
	// DerivePath derives every index of path in order.
	DerivePath(path bip32.Path) (ExtendedPublicKey, error)
}

// HDWallet is a hierarchical deterministic wallet rooted at one master key.
type HDWallet interface {
	// MasterKey returns the master extended private key.
	MasterKey() ExtendedPrivateKey
	// DerivePath derives the private key at a path such as "m/44'/0'/0'/0/0".
	DerivePath(path string) (ExtendedPrivateKey, error)
	// DerivePublicPath derives the public key at a path.
	DerivePublicPath(path string) (ExtendedPublicKey, error)
}
