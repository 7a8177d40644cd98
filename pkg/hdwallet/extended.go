package hdwallet

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/bip32/ecdsa"
	"hdwallet-core/pkg/errno"
)

// maxEncodedDepth is the largest depth the one-byte depth field can hold.
const maxEncodedDepth = 255

// EncodeExtended serializes a secp256k1 key in the Base58Check extended key
// format (xprv/xpub on mainnet). A nil net means mainnet.
func EncodeExtended(key ExtendedKey, net *chaincfg.Params) (string, error) {
	if net == nil {
		net = &chaincfg.MainNetParams
	}
	if key.Curve() != Secp256k1 {
		return "", fmt.Errorf("%w: curve %s", errno.ErrUnsupportedEncoding, key.Curve())
	}
	if key.Depth() > maxEncodedDepth {
		return "", fmt.Errorf("%w: depth %d", errno.ErrUnsupportedEncoding, key.Depth())
	}

	raw, err := key.Bytes()
	if err != nil {
		return "", err
	}

	version := net.HDPublicKeyID[:]
	if key.IsPrivate() {
		version = net.HDPrivateKeyID[:]
	}
	fp := key.ParentFingerprint()

	ek := hdkeychain.NewExtendedKey(version, raw, key.ChainCode(), fp[:],
		uint8(key.Depth()), uint32(key.ChildIndex()), key.IsPrivate())
	return ek.String(), nil
}

// DecodeExtended parses an extended key produced by EncodeExtended or any
// BIP32 wallet. The result is an ExtendedPrivateKey or an ExtendedPublicKey
// and keeps its depth, child index and parent fingerprint.
func DecodeExtended(s string) (ExtendedKey, error) {
	ek, err := hdkeychain.NewKeyFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
	}

	n := node{depth: int(ek.Depth()), index: bip32.Index(ek.ChildIndex())}
	binary.BigEndian.PutUint32(n.parent[:], ek.ParentFingerprint())

	if ek.IsPrivate() {
		priv, err := ek.ECPrivKey()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
		}
		k, err := ecdsa.NewPrivateKey(ecdsa.Secp256k1, priv.Serialize(), ek.ChainCode())
		if err != nil {
			return nil, err
		}
		return &ecdsaPrivate{node: n, key: k}, nil
	}

	pub, err := ek.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
	}
	k, err := ecdsa.NewPublicKey(ecdsa.Secp256k1, pub.SerializeCompressed(), ek.ChainCode())
	if err != nil {
		return nil, err
	}
	return &ecdsaPublic{node: n, key: k}, nil
}
