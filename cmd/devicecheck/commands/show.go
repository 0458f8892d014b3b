package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/agiangrant/devicecheck"
	"github.com/agiangrant/devicecheck/internal/config"
	"github.com/agiangrant/devicecheck/internal/display"
)

type showOptions struct {
	platform string
	format   string
	title    string
	noColor  bool
}

func newShowCommand(g *globalOptions) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the platform and its flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, g, opts)
		},
	}

	cmd.Flags().StringVar(&opts.platform, "platform", "", "render a fixed platform instead of detecting it")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: text, json or toml")
	cmd.Flags().StringVar(&opts.title, "title", "", "title shown above the list")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored headers")

	return cmd
}

func runShow(cmd *cobra.Command, g *globalOptions, opts *showOptions) error {
	cfg, err := config.Load(g.fs, g.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file
	if cmd.Flags().Changed("platform") {
		cfg.Preview.Platform = opts.platform
	}
	if opts.format != "" {
		cfg.Display.Format = opts.format
	}
	if opts.title != "" {
		cfg.Display.Title = opts.title
	}
	if opts.noColor {
		cfg.Display.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	checker, err := selectChecker(cfg.Preview.Platform)
	if err != nil {
		return err
	}

	return display.Render(cmd.OutOrStdout(), checker, display.OptionsFromConfig(cfg.Display))
}

// selectChecker returns the shared detector, or an isolated one pinned to
// label when set
func selectChecker(label string) (devicecheck.Checker, error) {
	if label == "" {
		return devicecheck.Shared(), nil
	}

	p, ok := devicecheck.ParsePlatform(label)
	if !ok {
		return nil, fmt.Errorf("unknown platform %q (valid: %s)", label, platformLabels())
	}

	log.Debug().Str("platform", p.String()).Msg("rendering preview platform")
	return devicecheck.NewDetector(p), nil
}

func platformLabels() string {
	ps := devicecheck.Platforms()
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = p.String()
	}
	return strings.Join(labels, ", ")
}
