package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"hdwallet-core/pkg/errno"
)

// BTCGenerator 比特币 P2PKH 地址生成器 (1...)
type BTCGenerator struct {
	network *chaincfg.Params
}

func NewBTCGenerator(network *chaincfg.Params) *BTCGenerator {
	if network == nil {
		network = &chaincfg.MainNetParams
	}
	return &BTCGenerator{network: network}
}

// PubKeyToAddress 将公钥字节 (压缩格式) 转换为 P2PKH 地址
func (g *BTCGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKey(pubKeyBytes, g.network)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
	}
	return addr.AddressPubKeyHash().EncodeAddress(), nil
}

// SegwitGenerator 原生隔离见证 P2WPKH 地址生成器 (bc1q...)
type SegwitGenerator struct {
	network *chaincfg.Params
}

func NewSegwitGenerator(network *chaincfg.Params) *SegwitGenerator {
	if network == nil {
		network = &chaincfg.MainNetParams
	}
	return &SegwitGenerator{network: network}
}

// PubKeyToAddress 将压缩公钥转换为 P2WPKH 地址，不接受非压缩公钥
func (g *SegwitGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	if _, err := btcutil.NewAddressPubKey(pubKeyBytes, g.network); err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
	}
	if len(pubKeyBytes) != 33 {
		return "", fmt.Errorf("%w: segwit needs a compressed key", errno.ErrInvalidKey)
	}

	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pubKeyBytes), g.network)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
	}
	return addr.EncodeAddress(), nil
}

// NetworkParams 将配置中的网络名称映射为 chaincfg 网络参数
func NetworkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet3", "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("%w: unknown network %q", errno.ErrBadInput, name)
	}
}
