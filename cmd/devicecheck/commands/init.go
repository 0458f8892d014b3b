package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agiangrant/devicecheck/internal/config"
)

func newInitCommand(g *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default devicecheck.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exists, err := afero.Exists(g.fs, g.configPath)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", g.configPath, err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", g.configPath)
			}

			if err := config.Save(g.fs, g.configPath, config.DefaultConfig()); err != nil {
				return err
			}

			log.Info().Str("path", g.configPath).Msg("wrote config")
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", g.configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
