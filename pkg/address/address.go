// Package address turns derived secp256k1 public keys into chain addresses.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"hdwallet-core/pkg/errno"
	"hdwallet-core/pkg/hdwallet"
)

// Generator converts public key bytes to an address string.
type Generator interface {
	PubKeyToAddress(pubKeyBytes []byte) (string, error)
}

// Type names an address format.
type Type string

const (
	BTC       Type = "btc"
	BTCSegwit Type = "btc-segwit"
	ETH       Type = "eth"
)

// NewGenerator returns the generator for kind. network only matters for the
// bitcoin formats.
func NewGenerator(kind Type, network *chaincfg.Params) (Generator, error) {
	switch kind {
	case BTC:
		return NewBTCGenerator(network), nil
	case BTCSegwit:
		return NewSegwitGenerator(network), nil
	case ETH:
		return NewETHGenerator(), nil
	default:
		return nil, fmt.Errorf("%w %q", errno.ErrUnsupportedAddress, string(kind))
	}
}

// FromKey renders the address of a derived key. Only secp256k1 keys have
// addresses here.
func FromKey(key hdwallet.ExtendedKey, kind Type, network *chaincfg.Params) (string, error) {
	if key.Curve() != hdwallet.Secp256k1 {
		return "", fmt.Errorf("%w: %s on curve %s", errno.ErrUnsupportedAddress, kind, key.Curve())
	}

	g, err := NewGenerator(kind, network)
	if err != nil {
		return "", err
	}

	pub, ok := key.(hdwallet.ExtendedPublicKey)
	if !ok {
		priv, isPriv := key.(hdwallet.ExtendedPrivateKey)
		if !isPriv {
			return "", errno.ErrNotAPublicKey
		}
		if pub, err = priv.Public(); err != nil {
			return "", err
		}
	}

	raw, err := pub.Bytes()
	if err != nil {
		return "", err
	}
	return g.PubKeyToAddress(raw)
}
