package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/jmylchreest/apcheck/internal/colour"
	"github.com/jmylchreest/apcheck/internal/config"
)

const (
	previewText = " The quick brown fox "
	swatchWidth = 4
)

// result is the outcome of a single contrast check.
type result struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Contrast   float64 `json:"contrast"`
	Polarity   string  `json:"polarity"`
	Threshold  float64 `json:"threshold"`
	Pass       bool    `json:"pass"`
	Blended    bool    `json:"blended,omitempty"`
}

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// render writes res to out in the configured format.
func render(out io.Writer, cfg config.Config, res result, preview bool, fg, bg colour.RGB) error {
	switch cfg.Format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case config.FormatTable:
		table := NewTable([]string{"FOREGROUND", "BACKGROUND", "LC", "POLARITY", "THRESHOLD", "RESULT"})
		table.AddRow([]string{
			res.Foreground,
			res.Background,
			formatFloat(res.Contrast, cfg.Precision),
			res.Polarity,
			formatFloat(res.Threshold, cfg.Precision),
			statusText(res.Pass),
		})
		_, err := fmt.Fprint(out, table.Render())
		return err

	default:
		label := failLabel("FAIL")
		if res.Pass {
			label = passLabel("PASS")
		}

		fgBlock, bgBlock := "", ""
		if preview {
			fgBlock = " " + colour.ColourPreview(fg, swatchWidth)
			bgBlock = " " + colour.ColourPreview(bg, swatchWidth)
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "foreground  %s%s\n", res.Foreground, fgBlock)
		fmt.Fprintf(&buf, "background  %s%s\n", res.Background, bgBlock)
		fmt.Fprintf(&buf, "contrast    Lc %s (%s)\n", formatFloat(res.Contrast, cfg.Precision), res.Polarity)
		fmt.Fprintf(&buf, "threshold   %s %s\n", formatFloat(res.Threshold, cfg.Precision), label)
		if preview {
			fmt.Fprintf(&buf, "preview     %s\n", colour.Swatch(fg, bg, previewText, 0))
		}

		_, err := buf.WriteTo(out)
		return err
	}
}

func statusText(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
