package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/apcheck/internal/apca"
	"github.com/jmylchreest/apcheck/internal/colour"
	"github.com/jmylchreest/apcheck/internal/config"
	"github.com/jmylchreest/apcheck/pkg/contrast"
)

// ErrBelowThreshold is returned by the check command when the contrast
// magnitude is below the requested threshold.
var ErrBelowThreshold = errors.New("contrast below threshold")

// checkOptions holds flags for the check command that are not part of Config.
type checkOptions struct {
	blend   bool
	preview bool
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}

	checkCmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Score the contrast of a text colour on a background",
		Long: `Score the APCA contrast of a foreground (text) colour on a background colour.

The score (Lc) is positive for dark text on a light background and negative
for light text on a dark background. The check passes when |Lc| is at least
the threshold; otherwise the command exits with a non-zero status.

Defaults may be set with APCHECK_THRESHOLD, APCHECK_FORMAT, APCHECK_PRECISION
and APCHECK_LOG_LEVEL.

Examples:
  # Black text on white
  apcheck check '#000' '#fff'

  # Require Lc 75 for body text
  apcheck check --threshold 75 '#555' white

  # Composite a translucent foreground before scoring
  apcheck check --blend 'rgba(0, 0, 0, 0.6)' '#fafafa'

  # Machine-readable output
  apcheck check -f json 'hsl(210, 40%, 30%)' 'oklch(0.97 0.01 240)'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts, args)
		},
	}

	addCheckFlags(checkCmd.Flags(), opts)

	return checkCmd
}

func addCheckFlags(fs *pflag.FlagSet, opts *checkOptions) {
	fs.Float64P("threshold", "t", 60, "minimum |Lc| required to pass")
	fs.StringP("format", "f", config.FormatText, "output format (text, json, table)")
	fs.IntP("precision", "p", 1, "decimal places for Lc in text and table output")
	fs.BoolVar(&opts.blend, "blend", false, "composite a translucent foreground onto the background")
	fs.BoolVar(&opts.preview, "preview", false, "show a colour preview (default: on when stdout is a terminal)")
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, root *rootOptions, opts *checkOptions, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), root, cfg.LogLevel)

	// Parsed here only for alpha handling and display; the score comes
	// from the contrast package, which parses the inputs itself.
	fg, err := colour.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := colour.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	logger.Debug("parsed colours", "foreground", fg.String(), "background", bg.String())

	if !bg.Opaque() {
		logger.Warn("background alpha is ignored", "background", args[1])
	}

	score := contrast.APCAContrast
	if opts.blend {
		score = contrast.BlendedAPCAContrast
	} else if !fg.Opaque() {
		logger.Warn("foreground alpha is ignored, use --blend to composite it", "foreground", args[0])
	}

	lc, err := score(args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to compute contrast: %w", err)
	}

	shown := fg
	if opts.blend && !fg.Opaque() {
		shown = apca.AlphaBlend(fg, bg)
	}

	res := result{
		Foreground: shown.Hex(),
		Background: bg.Hex(),
		Contrast:   lc,
		Polarity:   apca.PolarityOf(lc).String(),
		Threshold:  cfg.Threshold,
		Pass:       contrast.MeetsThreshold(lc, cfg.Threshold),
		Blended:    opts.blend && !fg.Opaque(),
	}
	logger.Debug("computed contrast", "lc", lc, "threshold", cfg.Threshold, "pass", res.Pass)

	if !root.quiet {
		out := cmd.OutOrStdout()
		preview := opts.preview
		if !cmd.Flags().Changed("preview") {
			preview = isTerminal(out)
		}
		if err := render(out, cfg, res, preview, shown.RGB(), bg.RGB()); err != nil {
			return err
		}
	}

	if !res.Pass {
		return fmt.Errorf("%w: |Lc| %.*f < %.*f", ErrBelowThreshold,
			cfg.Precision, math.Abs(lc), cfg.Precision, cfg.Threshold)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
