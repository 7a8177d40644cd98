package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"hdwallet-core/pkg/errno"
)

// ETHGenerator 以太坊地址生成器
type ETHGenerator struct{}

func NewETHGenerator() *ETHGenerator {
	return &ETHGenerator{}
}

// PubKeyToAddress 将 secp256k1 公钥 (压缩或 65 字节非压缩格式) 转换为
// 带 EIP-55 校验的地址
func (g *ETHGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	pub, err := btcec.ParsePubKey(pubKeyBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrInvalidKey, err)
	}

	// 去掉 0x04 前缀
	hash := keccak256(pub.SerializeUncompressed()[1:])
	return common.BytesToAddress(hash[12:]).Hex(), nil
}

func keccak256(data []byte) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return hash.Sum(nil)
}
