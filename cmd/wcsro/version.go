package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wcsro/internal/config"
	"github.com/katalvlaran/wcsro/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show wcsro version information",
	Long: `Display the wcsro version, commit, build time and platform.

--short prints the abbreviated commit only; --format json|yaml emits the full
record in the same encodings as compute reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		format, _ := cmd.Flags().GetString("format")
		return printVersion(cmd.OutOrStdout(), version.Get(), format, short)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print the abbreviated commit hash only")
	versionCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
}

// printVersion renders info; structured formats reuse the report encoders.
func printVersion(w io.Writer, info version.Info, format string, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, info.Short())
		return err
	}
	switch strings.ToLower(format) {
	case config.FormatJSON, config.FormatYAML:
		return encode(w, format, info)
	}
	_, err := fmt.Fprintf(w, "%s\nPlatform: %s\nGo: %s\n", info, info.Platform, info.GoVersion)
	return err
}
