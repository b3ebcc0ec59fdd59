// Package cli provides the command-line interface for apcheck.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/apcheck/internal/version"
)

// rootOptions holds the global flags shared by all subcommands.
type rootOptions struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the apcheck command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "apcheck",
		Short: "Check APCA contrast between colours",
		Long: `apcheck scores the perceptual contrast of a text colour on a background
colour using APCA (the Advanced Perceptual Contrast Algorithm) and checks
the score against a minimum Lc value.

Colours may be given as hex, rgb(), hsl(), oklch(), oklab() or CSS names.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(opts))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
