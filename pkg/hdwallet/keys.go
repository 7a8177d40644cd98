package hdwallet

import (
	"github.com/btcsuite/btcd/btcutil"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/bip32/ecdsa"
	"hdwallet-core/pkg/bip32/ed25519"
	"hdwallet-core/pkg/errno"
)

// node holds the BIP32 position of a key in its tree.
type node struct {
	depth  int
	index  bip32.Index
	parent [4]byte
}

func (n node) Depth() int                 { return n.depth }
func (n node) ChildIndex() bip32.Index    { return n.index }
func (n node) ParentFingerprint() [4]byte { return n.parent }

func (n node) child(parentPub []byte, index bip32.Index) node {
	var fp [4]byte
	copy(fp[:], btcutil.Hash160(parentPub))
	return node{depth: n.depth + 1, index: index, parent: fp}
}

// Fingerprint returns the first 4 bytes of HASH160 of the key's public
// half. Ed25519 keys are hashed with a 0x00 prefix.
func Fingerprint(key ExtendedKey) ([4]byte, error) {
	var pub []byte
	switch k := key.(type) {
	case ExtendedPrivateKey:
		p, err := k.Public()
		if err != nil {
			return [4]byte{}, err
		}
		if pub, err = publicBytes(p); err != nil {
			return [4]byte{}, err
		}
	case ExtendedPublicKey:
		var err error
		if pub, err = publicBytes(k); err != nil {
			return [4]byte{}, err
		}
	default:
		return [4]byte{}, errno.ErrNotAPublicKey
	}

	var fp [4]byte
	copy(fp[:], btcutil.Hash160(pub))
	return fp, nil
}

func publicBytes(k ExtendedPublicKey) ([]byte, error) {
	b, err := k.Bytes()
	if err != nil {
		return nil, err
	}
	if k.Curve() == Ed25519 {
		b = append([]byte{0x00}, b...)
	}
	return b, nil
}

type ecdsaPrivate struct {
	node
	key *ecdsa.PrivateKey
}

func (k *ecdsaPrivate) Curve() Curve           { return Curve(k.key.Curve()) }
func (k *ecdsaPrivate) ChainCode() []byte      { return k.key.ChainCode() }
func (k *ecdsaPrivate) Bytes() ([]byte, error) { return k.key.Bytes() }
func (k *ecdsaPrivate) IsPrivate() bool        { return true }

func (k *ecdsaPrivate) Derive(index bip32.Index) (ExtendedPrivateKey, error) {
	child, err := k.key.Derive(index)
	if err != nil {
		return nil, err
	}
	pub, err := k.key.Public()
	if err != nil {
		return nil, err
	}
	pubBytes, err := pub.Bytes()
	if err != nil {
		return nil, err
	}
	return &ecdsaPrivate{node: k.child(pubBytes, index), key: child}, nil
}

func (k *ecdsaPrivate) DerivePath(path bip32.Path) (ExtendedPrivateKey, error) {
	return bip32.Walk[ExtendedPrivateKey](k, path, ExtendedPrivateKey.Derive)
}

func (k *ecdsaPrivate) Public() (ExtendedPublicKey, error) {
	pub, err := k.key.Public()
	if err != nil {
		return nil, err
	}
	return &ecdsaPublic{node: k.node, key: pub}, nil
}

type ecdsaPublic struct {
	node
	key *ecdsa.PublicKey
}

func (k *ecdsaPublic) Curve() Curve           { return Curve(k.key.Curve()) }
func (k *ecdsaPublic) ChainCode() []byte      { return k.key.ChainCode() }
func (k *ecdsaPublic) Bytes() ([]byte, error) { return k.key.Bytes() }
func (k *ecdsaPublic) IsPrivate() bool        { return false }

func (k *ecdsaPublic) Derive(index bip32.Index) (ExtendedPublicKey, error) {
	child, err := k.key.Derive(index)
	if err != nil {
		return nil, err
	}
	pubBytes, err := k.key.Bytes()
	if err != nil {
		return nil, err
	}
	return &ecdsaPublic{node: k.child(pubBytes, index), key: child}, nil
}

func (k *ecdsaPublic) DerivePath(path bip32.Path) (ExtendedPublicKey, error) {
	return bip32.Walk[ExtendedPublicKey](k, path, ExtendedPublicKey.Derive)
}

type ed25519Private struct {
	node
	key *ed25519.PrivateKey
}

func (k *ed25519Private) Curve() Curve           { return Ed25519 }
func (k *ed25519Private) ChainCode() []byte      { return k.key.ChainCode() }
func (k *ed25519Private) Bytes() ([]byte, error) { return k.key.Bytes() }
func (k *ed25519Private) IsPrivate() bool        { return true }

func (k *ed25519Private) Derive(index bip32.Index) (ExtendedPrivateKey, error) {
	child, err := k.key.Derive(index)
	if err != nil {
		return nil, err
	}
	pub, err := k.key.Public()
	if err != nil {
		return nil, err
	}
	pubBytes, err := pub.Bytes()
	if err != nil {
		return nil, err
	}
	return &ed25519Private{node: k.child(append([]byte{0x00}, pubBytes...), index), key: child}, nil
}

func (k *ed25519Private) DerivePath(path bip32.Path) (ExtendedPrivateKey, error) {
	return bip32.Walk[ExtendedPrivateKey](k, path, ExtendedPrivateKey.Derive)
}

func (k *ed25519Private) Public() (ExtendedPublicKey, error) {
	pub, err := k.key.Public()
	if err != nil {
		return nil, err
	}
	return &ed25519Public{node: k.node, key: pub}, nil
}

type ed25519Public struct {
	node
	key *ed25519.PublicKey
}

func (k *ed25519Public) Curve() Curve           { return Ed25519 }
func (k *ed25519Public) ChainCode() []byte      { return k.key.ChainCode() }
func (k *ed25519Public) Bytes() ([]byte, error) { return k.key.Bytes() }
func (k *ed25519Public) IsPrivate() bool        { return false }

func (k *ed25519Public) Derive(index bip32.Index) (ExtendedPublicKey, error) {
	if _, err := k.key.Derive(index); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *ed25519Public) DerivePath(path bip32.Path) (ExtendedPublicKey, error) {
	if _, err := k.key.DerivePath(path); err != nil {
		return nil, err
	}
	return k, nil
}
