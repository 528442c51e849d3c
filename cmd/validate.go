package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-e/flint/core/paths"
)

var discoveryFlag bool

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check that a directory is a Freelancer installation",
	Long: `Validates that the directory carries the identifying top-level entries
(DATA, DLLS, EXE, plus the Discovery launcher with --discovery) and that its
root configuration file can be indexed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Install.Path = args[0]
		}
		if discoveryFlag {
			cfg.Install.Discovery = true
		}

		session, err := newSession(cfg, logg)
		if err != nil {
			return err
		}

		logg.Info("installation accepted",
			zap.String("root", session.Root()),
			zap.Int("ini_categories", len(session.Inis())),
			zap.Int("resource_dlls", len(session.DLLs())),
		)
		return nil
	},
}

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Recover the on-disk casing of a path",
	Long: `Resolves a path written with arbitrary casing to its true on-disk form.
Fails when no entry matches a segment under any casing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, err := bootstrap()
		if err != nil {
			return err
		}

		resolved, err := paths.NewCache().Resolve(args[0])
		if err != nil {
			return err
		}
		logg.Info("path resolved", zap.String("input", args[0]), zap.String("resolved", resolved))
		cmd.Println(resolved)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd, resolveCmd)
	validateCmd.Flags().BoolVar(&discoveryFlag, "discovery", false, "Require the Discovery launcher marker")
}
