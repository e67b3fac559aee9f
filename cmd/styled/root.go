package main

import (
	"fmt"

	"github.com/arthur-debert/styled/internal/version"
	"github.com/arthur-debert/styled/pkg/logging"
	"github.com/arthur-debert/styled/pkg/styled"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the styled command tree. A fresh tree is built per call
// so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		colorMode string
	)

	rootCmd := &cobra.Command{
		Use:   "styled",
		Short: MsgRootShort,
		Long: `styled is a small demo and diagnostic tool for the styled library: it
shows the available colors and attributes and explains why styling is
currently on or off (CLICOLOR, CLICOLOR_FORCE, terminal detection).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			switch colorMode {
			case "auto":
				// Leave the policy to its environment-derived default.
			case "always":
				styled.SetShouldStyle(true)
			case "never":
				styled.SetShouldStyle(false)
			default:
				return fmt.Errorf(MsgErrColorMode, colorMode)
			}
			log.Debug().
				Str("command", cmd.Name()).
				Str("color", colorMode).
				Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", MsgFlagColor)

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "styled version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
