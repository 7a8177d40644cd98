package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"hdwallet-core/pkg/config"
	"hdwallet-core/pkg/errno"
	"hdwallet-core/pkg/logger"
)

// app carries what every subcommand needs after the root pre-run.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// newRootCmd builds the command tree. Persistent flags override the
// config file and HDWALLET_* environment variables.
func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "hdwallet-cli",
		Short: "Hierarchical deterministic key derivation tool",
		Long: `Derives BIP32 key trees on secp256k1 and P-256, SLIP-0010 trees on Ed25519,
and stretches BIP39 mnemonics into seeds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := logger.Init(cfg.App.Env, cfg.App.LogLevel); err != nil {
				return fmt.Errorf("%w: %v", errno.ErrBadInput, err)
			}
			logger.Debug("configuration loaded",
				zap.String("env", cfg.App.Env),
				zap.String("curve", cfg.Derivation.Curve),
				zap.String("format", cfg.Output.Format))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./hdwallet.yaml or ./config/hdwallet.yaml)")
	flags.String("curve", "", "curve: secp256k1, p256 or ed25519")
	flags.String("path", "", "derivation path, e.g. m/44'/0'/0'/0/0")
	flags.String("network", "", "bitcoin network for addresses and extended keys: mainnet, testnet3, regtest, signet")
	flags.StringP("output", "o", "", "output format: text or json")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = a.v.BindPFlag("derivation.curve", flags.Lookup("curve"))
	_ = a.v.BindPFlag("derivation.path", flags.Lookup("path"))
	_ = a.v.BindPFlag("derivation.network", flags.Lookup("network"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("output"))
	_ = a.v.BindPFlag("app.log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newSeedCmd(a),
		newDeriveCmd(a),
		newDerivePublicCmd(a),
		newPathCmd(a),
	)
	return rootCmd
}

// Execute runs the CLI and returns the process exit status: 0 on success,
// otherwise the class of the error code (10 generic, 20 derivation).
func Execute() int {
	return run(newRootCmd(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetArgs(args)
	defer logger.Sync()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code, msg := errno.Decode(err)
		logger.Error("command failed", zap.Int("code", code), zap.Error(err))
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s (code %d)\n", msg, code)
		return errno.Class(code)
	}
	return 0
}
