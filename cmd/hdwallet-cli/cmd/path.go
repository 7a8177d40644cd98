package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hdwallet-core/pkg/bip32"
)

type pathOutput struct {
	Path    string   `json:"path"`
	Indices []uint32 `json:"indices"`
	Steps   []string `json:"steps"`
}

func (o pathOutput) fields() []field {
	indices := make([]string, len(o.Indices))
	for i, x := range o.Indices {
		indices[i] = fmt.Sprint(x)
	}
	return []field{
		{"path", o.Path},
		{"indices", strings.Join(indices, " ")},
		{"steps", strings.Join(o.Steps, " ")},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path [path]",
		Short: "Normalize a derivation path and list its raw indices",
		Long: `Parses a path such as m/44h/0H/1 and prints its canonical form (m/44'/0'/1)
with the raw 32-bit index of every step. Without an argument the configured
derivation.path is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.cfg.Derivation.Path
			if len(args) == 1 {
				s = args[0]
			}
			path, err := bip32.ParsePath(s)
			if err != nil {
				return err
			}

			steps := make([]string, len(path))
			for i, index := range path {
				steps[i] = index.String()
			}
			return a.print(cmd, pathOutput{
				Path:    path.String(),
				Indices: path.Uint32s(),
				Steps:   steps,
			})
		},
	}
}
