package hdwallet

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/errno"
)

func hexString(b []byte) string { return hex.EncodeToString(b) }

func TestDeriveAllMatchesSequential(t *testing.T) {
	for _, curve := range []Curve{Secp256k1, P256} {
		t.Run(curve.String(), func(t *testing.T) {
			master, err := NewMasterKey(mustHex(t, vector1Seed), curve)
			require.NoError(t, err)
			paths := AccountPaths(bip32.MustParsePath("m/44'/0'/0'/0"), 0, 20)

			got, err := DeriveAll(context.Background(), master, paths, 4)
			require.NoError(t, err)
			require.Len(t, got, len(paths))

			for i, path := range paths {
				want, err := master.DerivePath(path)
				require.NoError(t, err)
				wantBytes, _ := want.Bytes()
				gotBytes, _ := got[i].Bytes()
				assert.Equal(t, wantBytes, gotBytes, path.String())
				assert.Equal(t, want.ChainCode(), got[i].ChainCode(), path.String())
				assert.Equal(t, bip32.Index(i), got[i].ChildIndex())
			}
		})
	}
}

func TestDeriveAllPublic(t *testing.T) {
	master, err := NewMasterKey(mustHex(t, vector1Seed), Secp256k1)
	require.NoError(t, err)
	pub, err := master.Public()
	require.NoError(t, err)

	got, err := DeriveAll(context.Background(), pub, []bip32.Path{
		bip32.NewPath(0, 1, 2),
		bip32.NewPath(),
	}, 0)
	require.NoError(t, err)

	b, _ := got[1].Bytes()
	assert.Equal(t, "0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2", hexString(b))
}

func TestDeriveAllError(t *testing.T) {
	master, err := NewMasterKey(mustHex(t, vector1Seed), Ed25519)
	require.NoError(t, err)

	paths := []bip32.Path{
		bip32.MustParsePath("m/0'"),
		bip32.MustParsePath("m/0'/1"),
		bip32.MustParsePath("m/1'"),
	}
	_, err = DeriveAll(context.Background(), master, paths, 2)
	assert.ErrorIs(t, err, errno.ErrNonHardenedDerivation)
}

func TestDeriveAllCancelled(t *testing.T) {
	master, err := NewMasterKey(mustHex(t, vector1Seed), Secp256k1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = DeriveAll(ctx, master, AccountPaths(bip32.Path{}, 0, 5), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAccountPaths(t *testing.T) {
	base := bip32.MustParsePath("m/84'/0'/0'")
	paths := AccountPaths(base, 5, 3)
	require.Len(t, paths, 3)
	assert.Equal(t, "m/84'/0'/0'/5", paths[0].String())
	assert.Equal(t, "m/84'/0'/0'/7", paths[2].String())
	assert.Equal(t, "m/84'/0'/0'", base.String())
}
