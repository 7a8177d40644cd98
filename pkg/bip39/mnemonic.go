package bip39

import (
	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a stretched mnemonic seed.
const SeedSize = 64

// NewSeedFromMnemonic stretches mnemonic into a 64-byte seed with
// PBKDF2-HMAC-SHA512 (2048 rounds, salt "mnemonic"+password).
// The mnemonic is used as given: wordlist and checksum are not checked.
func NewSeedFromMnemonic(mnemonic string, password string) []byte {
	return bip39.NewSeed(mnemonic, password)
}

// SeedService stretches mnemonics for callers that hold a service value,
// such as the CLI commands.
type SeedService struct {
	password string
}

// NewSeedService returns a service that stretches with password as the
// BIP39 passphrase (the "25th word"). Pass "" for none.
func NewSeedService(password string) *SeedService {
	return &SeedService{password: password}
}

// MnemonicToSeed stretches mnemonic with the service passphrase.
func (s *SeedService) MnemonicToSeed(mnemonic string) []byte {
	return NewSeedFromMnemonic(mnemonic, s.password)
}
