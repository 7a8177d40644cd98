package bip32

import (
	"fmt"
	"strconv"
	"strings"

	"hdwallet-core/pkg/errno"
)

// HardenedKeyStart is the index at which hardened children begin. An index
// with this bit set selects hardened derivation.
const HardenedKeyStart Index = 0x80000000

// Index is a BIP32 child index. The top bit is the hardened flag, the
// remaining 31 bits are the child number.
type Index uint32

// Hardened returns the hardened index for child number n.
func Hardened(n uint32) Index {
	return Index(n) | HardenedKeyStart
}

// IsHardened reports whether the hardened flag is set.
func (i Index) IsHardened() bool {
	return i&HardenedKeyStart != 0
}

// Number returns the child number with the hardened flag cleared.
func (i Index) Number() uint32 {
	return uint32(i &^ HardenedKeyStart)
}

func (i Index) String() string {
	s := strconv.FormatUint(uint64(i.Number()), 10)
	if i.IsHardened() {
		return s + "'"
	}
	return s
}

// Path is an ordered list of indices, root first.
type Path []Index

// NewPath builds a path from raw 32-bit values, hardened flags included.
func NewPath(indices ...uint32) Path {
	p := make(Path, len(indices))
	for i, x := range indices {
		p[i] = Index(x)
	}
	return p
}

// ParsePath parses the m/44'/0/1 notation. The leading "m" is optional and
// "'", "h" or "H" mark a hardened segment.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}

	parts := strings.Split(s, "/")
	if parts[0] == "m" {
		parts = parts[1:]
	}

	out := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q", errno.ErrMalformedPath, s)
		}

		var flag Index
		switch part[len(part)-1] {
		case '\'', 'h', 'H':
			flag = HardenedKeyStart
			part = part[:len(part)-1]
		}

		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad segment %q", errno.ErrMalformedPath, s, part)
		}
		// wraps modulo 2^32
		out = append(out, Index(uint32(n))|flag)
	}

	return out, nil
}

// MustParsePath is like ParsePath but panics on error. Intended for
// constants such as default account paths.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('m')
	for _, x := range p {
		sb.WriteByte('/')
		sb.WriteString(x.String())
	}
	return sb.String()
}

// Uint32s returns the raw index values.
func (p Path) Uint32s() []uint32 {
	out := make([]uint32, len(p))
	for i, x := range p {
		out[i] = uint32(x)
	}
	return out
}

// Append returns a new path with the given indices appended. p is not
// modified.
func (p Path) Append(indices ...Index) Path {
	out := make(Path, 0, len(p)+len(indices))
	out = append(out, p...)
	return append(out, indices...)
}

// Walk folds derive over path starting at root. The empty path returns root
// and the first error aborts the walk.
func Walk[K any](root K, path Path, derive func(K, Index) (K, error)) (K, error) {
	key := root
	for _, index := range path {
		child, err := derive(key, index)
		if err != nil {
			var zero K
			return zero, err
		}
		key = child
	}
	return key, nil
}
