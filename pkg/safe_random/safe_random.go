package safe_random

import (
	"crypto/rand"
	"fmt"
	"io"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/errno"
)

// Reader 是本包所有函数共用的随机数来源，默认为 crypto/rand.Reader。
// 测试中可以替换为确定性的数据流。
var Reader io.Reader = rand.Reader

// GenerateRandomBytes 从 Reader 读取 n 个安全随机字节。
// 注意：只有读满 n 个字节才返回 nil 错误。
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// GenerateSeed 生成 size 字节的随机 BIP32 种子。
// size 必须在 [bip32.MinSeedBytes, bip32.MaxSeedBytes] 之间，否则返回 ErrInvalidSeedSize。
func GenerateSeed(size int) ([]byte, error) {
	if size < bip32.MinSeedBytes || size > bip32.MaxSeedBytes {
		return nil, fmt.Errorf("%w %d", errno.ErrInvalidSeedSize, size)
	}
	return GenerateRandomBytes(size)
}
