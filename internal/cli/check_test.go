// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/apcheck/internal/cli"
	"github.com/jmylchreest/apcheck/pkg/contrast"
)

// runCLI executes the root command with args and returns stdout, stderr and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestCheckCommandTextLayout(t *testing.T) {
	out, _, err := runCLI(t, "check", "--preview=false", "#000000", "#FFFFFF")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "foreground  #000000" || lines[1] != "background  #ffffff" {
		t.Errorf("unexpected colour lines: %q", lines[:2])
	}
}

func TestCheckCommandText(t *testing.T) {
	out, _, err := runCLI(t, "check", "#000000", "#FFFFFF")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	for _, want := range []string{
		"foreground  #000000",
		"background  #ffffff",
		"Lc 106.0 (dark text on light background)",
		"threshold   60.0",
		"PASS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "preview") {
		t.Errorf("preview should be off for non-terminal output:\n%s", out)
	}
}

func TestCheckCommandBelowThreshold(t *testing.T) {
	out, _, err := runCLI(t, "check", "--threshold", "75", "#888", "#fff")
	if !errors.Is(err, cli.ErrBelowThreshold) {
		t.Fatalf("expected ErrBelowThreshold, got %v", err)
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("output should report FAIL:\n%s", out)
	}
	if !strings.Contains(err.Error(), "63.1 < 75.0") {
		t.Errorf("error should include score and threshold, got %q", err.Error())
	}
}

func TestCheckCommandNegativePolarityPasses(t *testing.T) {
	out, _, err := runCLI(t, "check", "-t", "90", "white", "black")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "Lc -107.9 (light text on dark background)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCheckCommandInvalidColour(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "foreground", args: []string{"check", "not-a-color", "#FFFFFF"}, want: "invalid foreground"},
		{name: "background", args: []string{"check", "#000", "not-a-color"}, want: "invalid background"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if !errors.Is(err, contrast.ErrInvalidColorFormat) {
				t.Fatalf("expected ErrInvalidColorFormat, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestCheckCommandJSON(t *testing.T) {
	out, _, err := runCLI(t, "check", "--format", "json", "#888888", "#ffffff", "--threshold", "90")
	if !errors.Is(err, cli.ErrBelowThreshold) {
		t.Fatalf("expected ErrBelowThreshold, got %v", err)
	}

	var res struct {
		Foreground string  `json:"foreground"`
		Background string  `json:"background"`
		Contrast   float64 `json:"contrast"`
		Polarity   string  `json:"polarity"`
		Threshold  float64 `json:"threshold"`
		Pass       bool    `json:"pass"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}

	if res.Foreground != "#888888" || res.Background != "#ffffff" {
		t.Errorf("unexpected colours: %+v", res)
	}
	if res.Contrast < 63.05 || res.Contrast > 63.06 {
		t.Errorf("Contrast = %v, want ~63.056", res.Contrast)
	}
	if res.Threshold != 90 || res.Pass {
		t.Errorf("unexpected threshold result: %+v", res)
	}
	if res.Polarity != "dark text on light background" {
		t.Errorf("Polarity = %q", res.Polarity)
	}
}

func TestCheckCommandTable(t *testing.T) {
	out, _, err := runCLI(t, "check", "-f", "table", "-p", "2", "#000", "#fff")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 table lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "FOREGROUND") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	for _, want := range []string{"#000000", "#ffffff", "106.04", "60.00", "PASS"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row missing %q: %q", want, lines[2])
		}
	}
}

func TestCheckCommandBlend(t *testing.T) {
	out, _, err := runCLI(t, "check", "--blend", "-t", "0", "rgba(0, 0, 0, 0.2)", "#ffffff")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "foreground  #cccccc") {
		t.Errorf("expected blended foreground:\n%s", out)
	}
	if !strings.Contains(out, "Lc 27.3 ") {
		t.Errorf("expected blended score:\n%s", out)
	}
}

func TestCheckCommandAlphaWarning(t *testing.T) {
	_, stderr, err := runCLI(t, "check", "rgba(0, 0, 0, 0.2)", "#ffffff")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(stderr, "foreground alpha is ignored") {
		t.Errorf("expected alpha warning on stderr, got %q", stderr)
	}
}

func TestCheckCommandPreview(t *testing.T) {
	out, _, err := runCLI(t, "check", "--preview", "#000", "#fff")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "\033[48;2;255;255;255m\033[38;2;0;0;0m") {
		t.Errorf("expected ANSI swatch in output:\n%q", out)
	}
	if !strings.Contains(out, "foreground  #000000 \033[48;2;0;0;0m    \033[0m\n") {
		t.Errorf("expected foreground colour block:\n%q", out)
	}
	if !strings.Contains(out, "background  #ffffff \033[48;2;255;255;255m    \033[0m\n") {
		t.Errorf("expected background colour block:\n%q", out)
	}
}

func TestCheckCommandQuiet(t *testing.T) {
	out, _, err := runCLI(t, "check", "-q", "#000", "#fff")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if out != "" {
		t.Errorf("quiet mode should print nothing, got %q", out)
	}

	_, _, err = runCLI(t, "check", "-q", "#777", "#777")
	if !errors.Is(err, cli.ErrBelowThreshold) {
		t.Errorf("quiet mode should still fail, got %v", err)
	}
}

func TestCheckCommandVerbose(t *testing.T) {
	_, stderr, err := runCLI(t, "check", "-v", "#000", "#fff")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(stderr, "computed contrast") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

func TestCheckCommandEnvironment(t *testing.T) {
	t.Setenv("APCHECK_THRESHOLD", "110")
	t.Setenv("APCHECK_FORMAT", "json")

	out, _, err := runCLI(t, "check", "#000", "#fff")
	if !errors.Is(err, cli.ErrBelowThreshold) {
		t.Fatalf("expected environment threshold to fail the check, got %v", err)
	}
	if !strings.Contains(out, `"threshold": 110`) {
		t.Errorf("expected JSON output with environment threshold:\n%s", out)
	}

	// Flags take precedence over the environment.
	if _, _, err := runCLI(t, "check", "-t", "60", "#000", "#fff"); err != nil {
		t.Errorf("flag threshold should override environment, got %v", err)
	}
}

func TestCheckCommandInvalidConfiguration(t *testing.T) {
	_, _, err := runCLI(t, "check", "-f", "xml", "#000", "#fff")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("expected invalid configuration error, got %v", err)
	}
}

func TestCheckCommandArgs(t *testing.T) {
	if _, _, err := runCLI(t, "check", "#000"); err == nil {
		t.Error("expected error for missing background")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "apcheck version ") {
		t.Errorf("unexpected version output: %q", out)
	}
}
