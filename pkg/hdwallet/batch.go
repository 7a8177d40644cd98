package hdwallet

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hdwallet-core/pkg/bip32"
)

// DefaultBatchLimit bounds DeriveAll when the caller passes limit <= 0.
const DefaultBatchLimit = 8

// Deriver is anything that derives descendants of its own type.
type Deriver[K any] interface {
	DerivePath(path bip32.Path) (K, error)
}

// DeriveAll derives every path from key concurrently, at most limit at a
// time. Results are in the order of paths. The first failure cancels the
// paths not yet started and is returned.
func DeriveAll[K Deriver[K]](ctx context.Context, key K, paths []bip32.Path, limit int) ([]K, error) {
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	out := make([]K, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child, err := key.DerivePath(path)
			if err != nil {
				return err
			}
			out[i] = child
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountPaths returns base/start ... base/start+count-1, the usual way to
// list receive or change addresses of one account.
func AccountPaths(base bip32.Path, start bip32.Index, count int) []bip32.Path {
	paths := make([]bip32.Path, 0, count)
	for i := 0; i < count; i++ {
		paths = append(paths, base.Append(start+bip32.Index(i)))
	}
	return paths
}
