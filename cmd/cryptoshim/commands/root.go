package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cryptoshim/internal/app"
	"cryptoshim/internal/config"
	"cryptoshim/internal/logging"
)

var (
	configPath string
	appCtx     *app.App
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptoshim",
		Short:         "Digest, AEAD and signature primitives from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.NewWire(app.Options{
				ConfigPath: configPath,
				Flags:      cmd.Flags(),
				LogWriter:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.String("digest", config.DefaultDigest, "digest algorithm")
	pf.String("aead", config.DefaultAEAD, "AEAD algorithm")
	pf.String("scheme", string(config.DefaultScheme), "signature scheme (ed25519, p256, p384)")
	pf.String("encoding", string(config.DefaultEncoding), "text encoding for keys, digests and signatures")
	pf.String("log-level", config.DefaultLogLevel, "log level")
	pf.Bool("log-pretty", false, "human-readable logs")

	root.AddCommand(
		digestCmd(),
		sealCmd(),
		openCmd(),
		keygenCmd(),
		pubkeyCmd(),
		signCmd(),
		verifyCmd(),
		algorithmsCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and logs a failure at error level before returning it.
// Failures before the app is wired go to a default logger on stderr.
func execute(root *cobra.Command) error {
	appCtx = nil
	err := root.Execute()
	if err == nil {
		return nil
	}
	logger := zerolog.Nop()
	if appCtx != nil {
		logger = appCtx.Log
	} else if l, lerr := logging.New(root.ErrOrStderr(), logging.Options{}); lerr == nil {
		logger = l
	}
	logger.Error().Err(err).Msg("command failed")
	return err
}
