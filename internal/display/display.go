// Package display renders a checker as the "Device Checker" list.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/devicecheck"
	"github.com/agiangrant/devicecheck/internal/config"
)

// Options controls how a checker is rendered
type Options struct {
	Title  string
	Format string
	Color  bool
}

// OptionsFromConfig copies the display section of cfg
func OptionsFromConfig(cfg config.DisplayConfig) Options {
	return Options{
		Title:  cfg.Title,
		Format: cfg.Format,
		Color:  cfg.Color,
	}
}

// Report is the structured form written for json and toml output
type Report struct {
	Title    string  `json:"title" toml:"title"`
	Platform string  `json:"platform" toml:"platform"`
	Flags    FlagSet `json:"flags" toml:"flags"`
}

type FlagSet struct {
	IsIphone      bool `json:"isIphone" toml:"isIphone"`
	IsIpad        bool `json:"isIpad" toml:"isIpad"`
	IsMac         bool `json:"isMac" toml:"isMac"`
	IsMacCatalyst bool `json:"isMacCatalyst" toml:"isMacCatalyst"`
	IsTV          bool `json:"isTV" toml:"isTV"`
	IsWatch       bool `json:"isWatch" toml:"isWatch"`
	IsVision      bool `json:"isVision" toml:"isVision"`
	IsSimulator   bool `json:"isSimulator" toml:"isSimulator"`
}

// NewReport snapshots c
func NewReport(title string, c devicecheck.Checker) Report {
	return Report{
		Title:    title,
		Platform: c.CurrentPlatform().String(),
		Flags: FlagSet{
			IsIphone:      c.IsIPhone(),
			IsIpad:        c.IsIPad(),
			IsMac:         c.IsMac(),
			IsMacCatalyst: c.IsMacCatalyst(),
			IsTV:          c.IsTV(),
			IsWatch:       c.IsWatch(),
			IsVision:      c.IsVision(),
			IsSimulator:   c.IsSimulator(),
		},
	}
}

// Render writes c to w in the requested format
func Render(w io.Writer, c devicecheck.Checker, opts Options) error {
	switch opts.Format {
	case "", config.FormatText:
		return renderText(w, c, opts)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewReport(opts.Title, c)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case config.FormatTOML:
		if err := toml.NewEncoder(w).Encode(NewReport(opts.Title, c)); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

func renderText(w io.Writer, c devicecheck.Checker, opts Options) error {
	title := plain
	header := plain
	if opts.Color {
		r := lipgloss.NewRenderer(w)
		title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render
		header = r.NewStyle().Bold(true).Foreground(lipgloss.Color("8")).Render
	}

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(title(opts.Title))
		b.WriteString("\n\n")
	}

	b.WriteString(header("Platform"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Current: %s\n\n", c.CurrentPlatform())

	b.WriteString(header("Flags"))
	b.WriteString("\n")
	for _, f := range devicecheck.Flags(c) {
		fmt.Fprintf(&b, "  %s: %t\n", f.Name, f.Value)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func plain(s ...string) string {
	return strings.Join(s, " ")
}
