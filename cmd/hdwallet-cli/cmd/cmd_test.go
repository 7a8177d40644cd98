package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vector1Seed  = "000102030405060708090a0b0c0d0e0f"
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := run(root, args)
	return code, stdout.String(), stderr.String()
}

func executeJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	code, stdout, stderr := execute(t, append(args, "-o", "json")...)
	require.Equal(t, 0, code, stderr)
	require.NoError(t, json.Unmarshal([]byte(stdout), v), stdout)
}

func TestSeedFromMnemonic(t *testing.T) {
	var out seedOutput
	executeJSON(t, &out, append([]string{"seed"}, strings.Fields(testMnemonic)...)...)
	assert.Equal(t, "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4", out.Seed)
	assert.Equal(t, "mnemonic", out.Source)
}

func TestSeedPrompt(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("TREZOR"), nil }

	var out seedOutput
	executeJSON(t, &out, "seed", "--prompt", testMnemonic)
	assert.Equal(t, "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04", out.Seed)
}

func TestSeedRandom(t *testing.T) {
	code, stdout, _ := execute(t, "seed", "--random", "32")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "source:")
	assert.Regexp(t, `seed:\s+[0-9a-f]{64}\n`, stdout)

	for _, size := range []string{"8", "0", "-1"} {
		code, _, stderr := execute(t, "seed", "--random="+size)
		assert.Equal(t, 20, code, size)
		assert.Contains(t, stderr, "code 20101", size)
	}
}

func TestDeriveFromSeed(t *testing.T) {
	var out keyOutput
	executeJSON(t, &out, "derive", "--seed", vector1Seed, "--path", "m/0'/1")
	assert.Equal(t, "secp256k1", out.Curve)
	assert.Equal(t, "m/0'/1", out.Path)
	assert.Equal(t, 2, out.Depth)
	assert.Equal(t, "2a7857631386ba23dacac34180dd1983734e444fdbf774041578e9b6adb37c19", out.ChainCode)
	assert.Equal(t, "3c6cb8d0f6a264c91ea8b5030fadaa8e538b020f0a387421a12de9319dc93368", out.PrivateKey)
	assert.Equal(t, "03501e454bf00751f24b1b489aa925215d66af2234e3891c3b21a52bedb3cd711c", out.PublicKey)
}

func TestDeriveCurves(t *testing.T) {
	var out keyOutput
	executeJSON(t, &out, "derive", "--seed", "0x"+vector1Seed, "--curve", "ed25519", "--path", "m/0h/1h")
	assert.Equal(t, "1932a5270f335bed617d5b935c80aedb1a35bd9fc1e31acafd5372c30f5c1187", out.PublicKey)
	assert.Len(t, out.PrivateKey, 128)

	executeJSON(t, &out, "derive", "--seed", vector1Seed, "--curve", "p256", "--path", "m/0'")
	assert.Equal(t, "6939694369114c67917a182c59ddb8cafc3004e63ca5d3b84403ba8613debc0c", out.PrivateKey)
}

func TestDeriveAddress(t *testing.T) {
	var out keyOutput
	executeJSON(t, &out, "derive", "--mnemonic", testMnemonic, "--path", "m/84'/0'/0'/0/0", "--address", "btc-segwit")
	assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", out.Address)

	executeJSON(t, &out, "derive", "--mnemonic", testMnemonic, "--path", "m/44'/60'/0'/0/0", "--address", "eth")
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", out.Address)
}

func TestDeriveExtendedKeys(t *testing.T) {
	var out keyOutput
	executeJSON(t, &out, "derive", "--seed", vector1Seed, "--xkey")
	assert.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", out.ExtendedPrivate)
	assert.Equal(t, "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8", out.ExtendedPublic)

	// watch-only derivation from the xpub
	var child keyOutput
	executeJSON(t, &child, "derive-public", "--xpub", out.ExtendedPublic, "--path", "m/0/1")
	var want keyOutput
	executeJSON(t, &want, "derive", "--seed", vector1Seed, "--path", "m/0/1")
	assert.Equal(t, want.PublicKey, child.PublicKey)
	assert.Equal(t, want.ChainCode, child.ChainCode)
	assert.Empty(t, child.PrivateKey)
}

func TestDeriveBatch(t *testing.T) {
	var list []keyOutput
	executeJSON(t, &list, "derive", "--seed", vector1Seed, "--path", "m/0'/1", "--count", "3", "--workers", "2")
	require.Len(t, list, 3)
	assert.Equal(t, "m/0'/1/2", list[2].Path)
	assert.Equal(t, uint32(2), list[2].ChildIndex)

	var single keyOutput
	executeJSON(t, &single, "derive", "--seed", vector1Seed, "--path", "m/0'/1/2")
	assert.Equal(t, single.PrivateKey, list[2].PrivateKey)
}

func TestDerivePublic(t *testing.T) {
	var out keyOutput
	executeJSON(t, &out, "derive-public",
		"--pub", "035a784662a4a20a65bf6aab9ae98a6c068a81c52e4b032c0fb5400c706cfccc56",
		"--chain-code", "47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141",
		"--path", "m/1")
	assert.Equal(t, "03501e454bf00751f24b1b489aa925215d66af2234e3891c3b21a52bedb3cd711c", out.PublicKey)
	assert.Equal(t, "2a7857631386ba23dacac34180dd1983734e444fdbf774041578e9b6adb37c19", out.ChainCode)
	assert.Empty(t, out.PrivateKey)
}

func TestPath(t *testing.T) {
	var out pathOutput
	executeJSON(t, &out, "path", "m/44h/0H/1")
	assert.Equal(t, "m/44'/0'/1", out.Path)
	assert.Equal(t, []uint32{0x8000002c, 0x80000000, 1}, out.Indices)
	assert.Equal(t, []string{"44'", "0'", "1"}, out.Steps)

	code, stdout, _ := execute(t, "path")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "path:")
	assert.Contains(t, stdout, "m\n")
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no seed", []string{"derive"}, 10, "code 10002"},
		{"bad path", []string{"path", "m//1"}, 20, "code 20103"},
		{"unknown curve", []string{"derive", "--seed", vector1Seed, "--curve", "ed448"}, 20, "code 20102"},
		{"bad hex", []string{"derive", "--seed", "zz"}, 20, "code 20104"},
		{"hardened public", []string{"derive-public",
			"--pub", "0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2",
			"--chain-code", "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508",
			"--path", "m/0'"}, 20, "code 20201"},
		{"address on p256", []string{"derive", "--seed", vector1Seed, "--curve", "p256", "--address", "btc"}, 20, "code 20401"},
		{"xkey on ed25519", []string{"derive", "--seed", vector1Seed, "--curve", "ed25519", "--xkey"}, 20, "code 20402"},
		{"ed25519 normal child", []string{"derive", "--seed", vector1Seed, "--curve", "ed25519", "--path", "m/1"}, 20, "code 20202"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}
