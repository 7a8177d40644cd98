package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hdwallet-core/pkg/hdwallet"
)

type field struct {
	label string
	value string
}

// texter is implemented by every command result for the text format.
type texter interface {
	fields() []field
}

func (o seedOutput) fields() []field {
	return []field{{"seed", o.Seed}, {"source", o.Source}}
}

type keyOutput struct {
	Curve             string `json:"curve"`
	Path              string `json:"path,omitempty"`
	Depth             int    `json:"depth"`
	ChildIndex        uint32 `json:"child_index"`
	ParentFingerprint string `json:"parent_fingerprint"`
	ChainCode         string `json:"chain_code"`
	PrivateKey        string `json:"private_key,omitempty"`
	PublicKey         string `json:"public_key"`
	ExtendedPrivate   string `json:"extended_private,omitempty"`
	ExtendedPublic    string `json:"extended_public,omitempty"`
	Address           string `json:"address,omitempty"`
}

func (o keyOutput) fields() []field {
	fs := []field{
		{"curve", o.Curve},
		{"path", o.Path},
		{"depth", fmt.Sprint(o.Depth)},
		{"child index", fmt.Sprint(o.ChildIndex)},
		{"parent fingerprint", o.ParentFingerprint},
		{"chain code", o.ChainCode},
		{"private key", o.PrivateKey},
		{"public key", o.PublicKey},
		{"xprv", o.ExtendedPrivate},
		{"xpub", o.ExtendedPublic},
		{"address", o.Address},
	}
	out := fs[:0]
	for _, f := range fs {
		if f.value != "" {
			out = append(out, f)
		}
	}
	return out
}

type keyList []keyOutput

func (l keyList) fields() []field {
	var fs []field
	for i, k := range l {
		if i > 0 {
			fs = append(fs, field{})
		}
		fs = append(fs, k.fields()...)
	}
	return fs
}

// describeKey fills the parts of keyOutput every key has. Private keys also
// report their public half.
func describeKey(key hdwallet.ExtendedKey, path string) (keyOutput, error) {
	fp := key.ParentFingerprint()
	out := keyOutput{
		Curve:             key.Curve().String(),
		Path:              path,
		Depth:             key.Depth(),
		ChildIndex:        uint32(key.ChildIndex()),
		ParentFingerprint: hex.EncodeToString(fp[:]),
		ChainCode:         hex.EncodeToString(key.ChainCode()),
	}

	pub, ok := key.(hdwallet.ExtendedPublicKey)
	if priv, isPriv := key.(hdwallet.ExtendedPrivateKey); isPriv {
		raw, err := priv.Bytes()
		if err != nil {
			return out, err
		}
		out.PrivateKey = hex.EncodeToString(raw)
		if pub, err = priv.Public(); err != nil {
			return out, err
		}
		ok = true
	}
	if ok {
		raw, err := pub.Bytes()
		if err != nil {
			return out, err
		}
		out.PublicKey = hex.EncodeToString(raw)
	}
	return out, nil
}

// print writes v in the configured output format.
func (a *app) print(cmd *cobra.Command, v texter) error {
	w := cmd.OutOrStdout()

	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range v.fields() {
		if f.label == "" {
			fmt.Fprintln(tw)
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", f.label, f.value)
	}
	return tw.Flush()
}
