package bip39

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeedFromMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		password string
		want     string
	}{
		{
			name:     "24 words",
			mnemonic: "glory promote mansion idle axis finger extra february uncover one trip resource lawn turtle enact monster seven myth punch hobby comfort wild raise skin",
			want:     "b11997faff420a331bb4a4ffdc8bdc8ba7c01732a99a30d83dbbebd469666c84b47d09d3f5f472b3b9384ac634beba2a440ba36ec7661144132f35e206873564",
		},
		{
			name:     "12 words",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			want:     "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		},
		{
			name:     "trezor passphrase",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			password: "TREZOR",
			want:     "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := NewSeedFromMnemonic(tt.mnemonic, tt.password)
			assert.Len(t, seed, SeedSize)
			assert.Equal(t, tt.want, hex.EncodeToString(seed))
		})
	}
}

func TestSeedService(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	plain := NewSeedService("")
	assert.Equal(t, NewSeedFromMnemonic(mnemonic, ""), plain.MnemonicToSeed(mnemonic))

	withPass := NewSeedService("TREZOR")
	assert.NotEqual(t, plain.MnemonicToSeed(mnemonic), withPass.MnemonicToSeed(mnemonic))
}

func TestNoWordlistValidation(t *testing.T) {
	// not a valid mnemonic, still stretched
	seed := NewSeedFromMnemonic("not a real mnemonic", "")
	assert.Len(t, seed, SeedSize)
}
