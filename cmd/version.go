package cmd

import (
	"github.com/bnema/finger-cli/internal/version"
	"github.com/spf13/cobra"
)

// Positional arguments are user names, so the version is a flag rather than
// a subcommand.
func applyVersion(cmd *cobra.Command) {
	cmd.Version = version.Version
	cmd.SetVersionTemplate("finger {{.Version}}\n")
}
