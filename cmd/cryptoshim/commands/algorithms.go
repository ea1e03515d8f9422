package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms and encodings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algs := appCtx.Algorithms()
			for _, category := range []string{"digest", "aead", "signature", "encoding"} {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", category+":", strings.Join(algs[category], " "))
			}
			return nil
		},
	}
}
