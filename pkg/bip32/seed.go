package bip32

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"hdwallet-core/pkg/errno"
)

const (
	// MinSeedBytes is the minimal allowed seed byte length
	MinSeedBytes = 16
	// MaxSeedBytes is the maximal allowed seed byte length
	MaxSeedBytes = 64
)

// CheckSeed validates the BIP32 seed length.
func CheckSeed(seed []byte) error {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return fmt.Errorf("%w %d", errno.ErrInvalidSeedSize, len(seed))
	}
	return nil
}

// ParseHex decodes a hex string with an optional 0x prefix.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errno.ErrInvalidHex, err)
	}
	return b, nil
}

// ParseSeed decodes a hex seed and validates its length.
func ParseSeed(s string) ([]byte, error) {
	seed, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	if err := CheckSeed(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

type hmacWriter struct {
	hash.Hash
}

func (hw hmacWriter) infallibleWrite(p []byte) {
	if _, err := hw.Write(p); err != nil {
		panic(fmt.Sprintf("writing to hmac should never fail: %v", err))
	}
}

// HMACSHA512 returns HMAC-SHA512(key, data...) split into its left and right
// 32-byte halves.
func HMACSHA512(key []byte, data ...[]byte) (il, ir [32]byte) {
	mac := hmacWriter{Hash: hmac.New(sha512.New, key)}
	for _, d := range data {
		mac.infallibleWrite(d)
	}
	sum := mac.Sum(nil)
	copy(il[:], sum[:32])
	copy(ir[:], sum[32:])
	return il, ir
}
