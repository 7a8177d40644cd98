package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"hdwallet-core/pkg/bip39"
	"hdwallet-core/pkg/errno"
	"hdwallet-core/pkg/logger"
	"hdwallet-core/pkg/safe_random"
)

// readPassword reads a passphrase without echo. Tests replace it.
var readPassword = func(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

type seedOutput struct {
	Seed   string `json:"seed"`
	Source string `json:"source"`
}

func newSeedCmd(a *app) *cobra.Command {
	var (
		passphrase string
		prompt     bool
		random     int
	)

	cmd := &cobra.Command{
		Use:   "seed [mnemonic words...]",
		Short: "Stretch a BIP39 mnemonic into a 64-byte seed",
		Long: `Stretches a mnemonic (given as arguments) with PBKDF2-HMAC-SHA512 into the
64-byte seed BIP32 master keys are generated from. The mnemonic is not
checked against a wordlist. With --random N a random N-byte seed is
printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("random") {
				if len(args) > 0 {
					return fmt.Errorf("%w: --random takes no mnemonic", errno.ErrBadInput)
				}
				seed, err := safe_random.GenerateSeed(random)
				if err != nil {
					return err
				}
				logger.Info("generated random seed", zap.Int("bytes", random))
				return a.print(cmd, seedOutput{Seed: hex.EncodeToString(seed), Source: "random"})
			}

			if len(args) == 0 {
				return fmt.Errorf("%w: mnemonic required", errno.ErrBadInput)
			}
			mnemonic := strings.Join(args, " ")

			if prompt {
				pass, err := promptPassphrase(cmd)
				if err != nil {
					return err
				}
				passphrase = pass
			}

			seed := bip39.NewSeedService(passphrase).MnemonicToSeed(mnemonic)
			logger.Debug("stretched mnemonic", zap.Int("words", len(strings.Fields(mnemonic))))
			return a.print(cmd, seedOutput{Seed: hex.EncodeToString(seed), Source: "mnemonic"})
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP39 passphrase")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "read the passphrase from the terminal without echo")
	cmd.Flags().IntVar(&random, "random", 0, "print a random seed of N bytes (16 to 64) instead")
	return cmd
}

func promptPassphrase(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "BIP39 passphrase: ")
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("%w: read passphrase: %v", errno.ErrBadInput, err)
	}
	return string(b), nil
}
