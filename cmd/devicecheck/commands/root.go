package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agiangrant/devicecheck/internal/config"
	"github.com/agiangrant/devicecheck/internal/logging"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	fs         afero.Fs
	configPath string
	debug      bool
}

// NewRootCommand builds the devicecheck command tree. All file access goes
// through afs.
func NewRootCommand(version string, afs afero.Fs) *cobra.Command {
	opts := &globalOptions{fs: afs}

	root := &cobra.Command{
		Use:   "devicecheck",
		Short: "devicecheck - report the device platform",
		Long: `devicecheck - report the device platform

Detects which platform the process runs on (iPhone, iPad, mac, macCatalyst,
tv, watch, vision or unknown) and whether it runs inside a simulator.

Configuration:
  Output can be configured via devicecheck.toml in the working directory.
  Run 'devicecheck init' to create one with default values.`,
		Example: `  devicecheck show                     List the detected platform and flags
  devicecheck show --platform iPad     Preview the list for an iPad
  devicecheck show --format json       Print the flags as JSON
  devicecheck platforms                List every platform label`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(cmd.ErrOrStderr(), opts.debug)
		},
	}

	root.SetVersionTemplate("devicecheck version {{.Version}}\n")

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to the config file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log detection details to stderr")

	root.AddCommand(
		newShowCommand(opts),
		newPlatformsCommand(),
		newInitCommand(opts),
		newVersionCommand(version),
	)

	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "devicecheck version %s\n", version)
		},
	}
}
