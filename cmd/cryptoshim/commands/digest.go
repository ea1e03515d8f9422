package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest [file...]",
		Short: "Hash files, or stdin when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				sum, err := appCtx.Digest("", cmd.InOrStdin())
				if err != nil {
					return err
				}
				return printEncoded(cmd, sum)
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				sum, err := appCtx.Digest("", f)
				_ = f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				s, err := appCtx.Encode(sum)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", s, path)
			}
			return nil
		},
	}
}
