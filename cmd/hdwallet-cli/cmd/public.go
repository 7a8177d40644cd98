package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hdwallet-core/pkg/address"
	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/errno"
	"hdwallet-core/pkg/hdwallet"
	"hdwallet-core/pkg/logger"
)

type publicOptions struct {
	pub       string
	chainCode string
	xpub      string
	deriveOptions
}

func newDerivePublicCmd(a *app) *cobra.Command {
	var opts publicOptions

	cmd := &cobra.Command{
		Use:   "derive-public",
		Short: "Derive public children from an extended public key",
		Long: `Derives normal (non-hardened) children from a public key and chain code,
without any private material. Hardened steps fail; Ed25519 public keys cannot
derive at all.`,
		Example: `  hdwallet-cli derive-public --pub 0339a3...85c2 --chain-code 873dff...d508 --path m/0/1
  hdwallet-cli derive-public --xpub xpub661My... --path m/0 --count 10 --address btc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDerivePublic(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.pub, "pub", "", "hex public key (33-byte compressed, or 32-byte Ed25519)")
	f.StringVar(&opts.chainCode, "chain-code", "", "hex chain code of the public key")
	f.StringVar(&opts.xpub, "xpub", "", "Base58 extended public key (secp256k1)")
	f.StringVar(&opts.address, "address", "", "also print an address: btc, btc-segwit or eth (secp256k1 only)")
	f.BoolVar(&opts.extended, "xkey", false, "also print xpub (secp256k1 only)")
	f.IntVar(&opts.count, "count", 0, "derive children 0..N-1 under --path instead of the path itself")
	f.IntVar(&opts.workers, "workers", hdwallet.DefaultBatchLimit, "parallel derivations for --count")
	cmd.MarkFlagsMutuallyExclusive("xpub", "pub")
	cmd.MarkFlagsRequiredTogether("pub", "chain-code")
	return cmd
}

func (a *app) parentPublicKey(opts publicOptions) (hdwallet.ExtendedPublicKey, error) {
	if opts.xpub != "" {
		key, err := hdwallet.DecodeExtended(opts.xpub)
		if err != nil {
			return nil, err
		}
		pub, ok := key.(hdwallet.ExtendedPublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: --xpub holds a private key", errno.ErrNotAPublicKey)
		}
		return pub, nil
	}

	if opts.pub == "" {
		return nil, fmt.Errorf("%w: --pub and --chain-code, or --xpub, required", errno.ErrBadInput)
	}
	curve, err := hdwallet.ParseCurve(a.cfg.Derivation.Curve)
	if err != nil {
		return nil, err
	}
	point, err := bip32.ParseHex(opts.pub)
	if err != nil {
		return nil, err
	}
	chainCode, err := bip32.ParseHex(opts.chainCode)
	if err != nil {
		return nil, err
	}
	return hdwallet.NewPublicKey(curve, point, chainCode)
}

func (a *app) runDerivePublic(cmd *cobra.Command, opts publicOptions) error {
	path, err := bip32.ParsePath(a.cfg.Derivation.Path)
	if err != nil {
		return err
	}
	network, err := address.NetworkParams(a.cfg.Derivation.Network)
	if err != nil {
		return err
	}

	parent, err := a.parentPublicKey(opts)
	if err != nil {
		return err
	}

	if opts.count <= 0 {
		key, err := parent.DerivePath(path)
		if err != nil {
			return err
		}
		logger.Debug("derived public key", zap.Stringer("curve", key.Curve()), zap.Stringer("path", path))

		out, err := describeDerived(key, path, opts.deriveOptions, network)
		if err != nil {
			return err
		}
		return a.print(cmd, out)
	}

	paths := hdwallet.AccountPaths(path, 0, opts.count)
	keys, err := hdwallet.DeriveAll(cmd.Context(), parent, paths, opts.workers)
	if err != nil {
		return err
	}

	list := make(keyList, 0, len(keys))
	for i, key := range keys {
		out, err := describeDerived(key, paths[i], opts.deriveOptions, network)
		if err != nil {
			return err
		}
		list = append(list, out)
	}
	return a.print(cmd, list)
}
