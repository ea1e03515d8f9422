package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptoshim/internal/util/memzero"
)

type aeadFlags struct {
	key string
	aad string
	in  string
	out string
}

func (f *aeadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.key, "key", "", "symmetric key in the configured encoding")
	cmd.Flags().StringVar(&f.aad, "aad", "", "associated data")
	cmd.Flags().StringVar(&f.in, "in", "", "input file (default stdin)")
	cmd.Flags().StringVar(&f.out, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("key")
}

func (f *aeadFlags) decodeKey() ([]byte, error) {
	key, err := appCtx.Decode(f.key)
	if err != nil {
		return nil, fmt.Errorf("--key: %w", err)
	}
	return key, nil
}

func sealCmd() *cobra.Command {
	var f aeadFlags
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt input as nonce || ciphertext || tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := f.decodeKey()
			if err != nil {
				return err
			}
			defer memzero.Zero(key)

			pt, err := readInput(cmd, f.in)
			if err != nil {
				return err
			}
			defer memzero.Zero(pt)

			sealed, err := appCtx.Seal("", key, []byte(f.aad), pt)
			if err != nil {
				return err
			}
			return writeOutput(cmd, f.out, sealed)
		},
	}
	f.register(cmd)
	return cmd
}

func openCmd() *cobra.Command {
	var f aeadFlags
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Decrypt and authenticate sealed input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := f.decodeKey()
			if err != nil {
				return err
			}
			defer memzero.Zero(key)

			sealed, err := readInput(cmd, f.in)
			if err != nil {
				return err
			}
			pt, err := appCtx.Open("", key, []byte(f.aad), sealed)
			if err != nil {
				return err
			}
			defer memzero.Zero(pt)
			return writeOutput(cmd, f.out, pt)
		},
	}
	f.register(cmd)
	return cmd
}
