package hdwallet

import (
	"fmt"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/bip39"
)

// Wallet implements HDWallet on one curve.
type Wallet struct {
	masterKey ExtendedPrivateKey
	curve     Curve
}

var _ HDWallet = (*Wallet)(nil)

// NewWallet builds a wallet from a 16 to 64 byte BIP32 seed.
func NewWallet(seed []byte, curve Curve) (*Wallet, error) {
	masterKey, err := NewMasterKey(seed, curve)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}
	return &Wallet{masterKey: masterKey, curve: curve}, nil
}

// NewWalletFromMnemonic stretches mnemonic with passphrase and builds a
// wallet from the resulting 64-byte seed.
func NewWalletFromMnemonic(mnemonic, passphrase string, curve Curve) (*Wallet, error) {
	return NewWallet(bip39.NewSeedFromMnemonic(mnemonic, passphrase), curve)
}

func (w *Wallet) MasterKey() ExtendedPrivateKey {
	return w.masterKey
}

func (w *Wallet) Curve() Curve {
	return w.curve
}

// DerivePath parses path and derives the private key at it.
// Accepts m/44'/0'/0'/0/0, m/44h/0h/0h/0/0 and the bare form 44'/0'.
func (w *Wallet) DerivePath(path string) (ExtendedPrivateKey, error) {
	p, err := bip32.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return w.masterKey.DerivePath(p)
}

// DerivePublicPath derives the private key at path and returns its public
// half, so hardened steps are allowed.
func (w *Wallet) DerivePublicPath(path string) (ExtendedPublicKey, error) {
	key, err := w.DerivePath(path)
	if err != nil {
		return nil, err
	}
	return key.Public()
}
