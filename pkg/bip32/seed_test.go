package bip32

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"hdwallet-core/pkg/errno"
)

func TestCheckSeed(t *testing.T) {
	for _, n := range []int{15, 16, 32, 64, 65, 0} {
		err := CheckSeed(make([]byte, n))
		valid := n >= MinSeedBytes && n <= MaxSeedBytes
		if valid && err != nil {
			t.Errorf("CheckSeed(%d bytes) = %v, want nil", n, err)
		}
		if !valid && !errors.Is(err, errno.ErrInvalidSeedSize) {
			t.Errorf("CheckSeed(%d bytes) = %v, want ErrInvalidSeedSize", n, err)
		}
	}
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed("0x000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if len(seed) != 16 || seed[15] != 0x0f {
		t.Errorf("unexpected seed %x", seed)
	}

	if _, err := ParseSeed("zz"); !errors.Is(err, errno.ErrInvalidHex) {
		t.Errorf("expected ErrInvalidHex, got %v", err)
	}
	if _, err := ParseSeed("00ff"); !errors.Is(err, errno.ErrInvalidSeedSize) {
		t.Errorf("expected ErrInvalidSeedSize, got %v", err)
	}
}

func TestHMACSHA512(t *testing.T) {
	// RFC 4231 test case 2.
	il, ir := HMACSHA512([]byte("Jefe"), []byte("what do ya want "), []byte("for nothing?"))
	want, _ := hex.DecodeString("164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
		"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737")
	if !bytes.Equal(il[:], want[:32]) || !bytes.Equal(ir[:], want[32:]) {
		t.Errorf("HMACSHA512 = %x%x", il, ir)
	}
}
