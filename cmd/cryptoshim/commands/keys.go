package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptoshim/internal/signature"
)

func keygenCmd() *cobra.Command {
	var out, passphrase string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key for --scheme and print its public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := appCtx.GenerateKey("", out, passphrase)
			if err != nil {
				return err
			}
			defer signer.Destroy()
			fmt.Fprintf(cmd.ErrOrStderr(), "fingerprint: %s\n", signature.Fingerprint(signer.Verifier()))
			return printEncoded(cmd, signer.PublicKeyBytes())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "private key file to write")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect the key")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func pubkeyCmd() *cobra.Command {
	var keyPath, passphrase string
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of a private key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := appCtx.LoadKey(keyPath, passphrase)
			if err != nil {
				return err
			}
			defer signer.Destroy()
			if err := printEncoded(cmd, signer.PublicKeyBytes()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "scheme: %s\nfingerprint: %s\n",
				signer.Scheme(), signature.Fingerprint(signer.Verifier()))
			return err
		},
	}
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "private key file")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "key passphrase")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func signCmd() *cobra.Command {
	var keyPath, passphrase, in string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign input with a private key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			sig, _, err := appCtx.Sign(keyPath, passphrase, msg)
			if err != nil {
				return err
			}
			return printEncoded(cmd, sig)
		},
	}
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "private key file")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "key passphrase")
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func verifyCmd() *cobra.Command {
	var pub, sig, in string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over input for --scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := appCtx.Decode(pub)
			if err != nil {
				return fmt.Errorf("--pub: %w", err)
			}
			s, err := appCtx.Decode(sig)
			if err != nil {
				return fmt.Errorf("--sig: %w", err)
			}
			msg, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			if err := appCtx.Verify("", pk, msg, s); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}
	cmd.Flags().StringVar(&pub, "pub", "", "public key in the configured encoding")
	cmd.Flags().StringVar(&sig, "sig", "", "signature in the configured encoding")
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
