package cmd

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hdwallet-core/pkg/address"
	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/errno"
	"hdwallet-core/pkg/hdwallet"
	"hdwallet-core/pkg/logger"
)

type deriveOptions struct {
	seed       string
	mnemonic   string
	passphrase string
	prompt     bool
	address    string
	extended   bool
	count      int
	workers    int
}

func newDeriveCmd(a *app) *cobra.Command {
	var opts deriveOptions

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the private key at a path from a seed or mnemonic",
		Example: `  hdwallet-cli derive --seed 000102030405060708090a0b0c0d0e0f --path "m/0'/1"
  hdwallet-cli derive --mnemonic "abandon ... about" --path "m/84'/0'/0'/0" --count 5 --address btc-segwit
  hdwallet-cli derive --seed 000102030405060708090a0b0c0d0e0f --curve ed25519 --path "m/0'/1'"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDerive(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.seed, "seed", "", "hex seed, 16 to 64 bytes")
	f.StringVar(&opts.mnemonic, "mnemonic", "", "BIP39 mnemonic to stretch into the seed")
	f.StringVar(&opts.passphrase, "passphrase", "", "BIP39 passphrase for --mnemonic")
	f.BoolVar(&opts.prompt, "prompt", false, "read the BIP39 passphrase from the terminal")
	f.StringVar(&opts.address, "address", "", "also print an address: btc, btc-segwit or eth (secp256k1 only)")
	f.BoolVar(&opts.extended, "xkey", false, "also print xprv/xpub (secp256k1 only)")
	f.IntVar(&opts.count, "count", 0, "derive children 0..N-1 under --path instead of the path itself")
	f.IntVar(&opts.workers, "workers", hdwallet.DefaultBatchLimit, "parallel derivations for --count")
	cmd.MarkFlagsMutuallyExclusive("seed", "mnemonic")
	return cmd
}

func (a *app) runDerive(cmd *cobra.Command, opts deriveOptions) error {
	curve, err := hdwallet.ParseCurve(a.cfg.Derivation.Curve)
	if err != nil {
		return err
	}
	path, err := bip32.ParsePath(a.cfg.Derivation.Path)
	if err != nil {
		return err
	}
	network, err := address.NetworkParams(a.cfg.Derivation.Network)
	if err != nil {
		return err
	}

	w, err := a.openWallet(cmd, opts, curve)
	if err != nil {
		return err
	}

	if opts.count <= 0 {
		key, err := w.MasterKey().DerivePath(path)
		if err != nil {
			return err
		}
		logger.Debug("derived key", zap.Stringer("curve", curve), zap.Stringer("path", path))

		out, err := describeDerived(key, path, opts, network)
		if err != nil {
			return err
		}
		return a.print(cmd, out)
	}

	paths := hdwallet.AccountPaths(path, 0, opts.count)
	keys, err := hdwallet.DeriveAll(cmd.Context(), w.MasterKey(), paths, opts.workers)
	if err != nil {
		return err
	}
	logger.Debug("derived batch", zap.Stringer("curve", curve), zap.Stringer("parent", path), zap.Int("count", len(keys)))

	list := make(keyList, 0, len(keys))
	for i, key := range keys {
		out, err := describeDerived(key, paths[i], opts, network)
		if err != nil {
			return err
		}
		list = append(list, out)
	}
	return a.print(cmd, list)
}

func (a *app) openWallet(cmd *cobra.Command, opts deriveOptions, curve hdwallet.Curve) (*hdwallet.Wallet, error) {
	switch {
	case opts.seed != "":
		seed, err := bip32.ParseSeed(opts.seed)
		if err != nil {
			return nil, err
		}
		return hdwallet.NewWallet(seed, curve)
	case opts.mnemonic != "":
		passphrase := opts.passphrase
		if opts.prompt {
			p, err := promptPassphrase(cmd)
			if err != nil {
				return nil, err
			}
			passphrase = p
		}
		return hdwallet.NewWalletFromMnemonic(opts.mnemonic, passphrase, curve)
	default:
		return nil, fmt.Errorf("%w: --seed or --mnemonic required", errno.ErrBadInput)
	}
}

func describeDerived(key hdwallet.ExtendedKey, path bip32.Path, opts deriveOptions, network *chaincfg.Params) (keyOutput, error) {
	out, err := describeKey(key, path.String())
	if err != nil {
		return out, err
	}

	if opts.address != "" {
		if out.Address, err = address.FromKey(key, address.Type(opts.address), network); err != nil {
			return out, err
		}
	}

	if opts.extended {
		if key.IsPrivate() {
			if out.ExtendedPrivate, err = hdwallet.EncodeExtended(key, network); err != nil {
				return out, err
			}
		}
		pub := key
		if priv, ok := key.(hdwallet.ExtendedPrivateKey); ok {
			if pub, err = priv.Public(); err != nil {
				return out, err
			}
		}
		if out.ExtendedPublic, err = hdwallet.EncodeExtended(pub, network); err != nil {
			return out, err
		}
	}
	return out, nil
}
