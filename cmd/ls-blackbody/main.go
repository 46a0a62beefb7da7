// Command ls-blackbody is a terminal UI for exploring blackbody radiation:
// the Planck spectrum, Wien peak, total intensity, and the apparent color
// of a glowing body as its temperature changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-blackbody/internal/blackbody"
	"github.com/litescript/ls-blackbody/internal/config"
	"github.com/litescript/ls-blackbody/internal/logging"
	"github.com/litescript/ls-blackbody/internal/state"
	"github.com/litescript/ls-blackbody/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	spectrumMode bool
	sweepSpec    string
	snapshotPath string
)

func main() {
	temp := flag.Float64("temp", 0, "Initial temperature in Kelvin (0 = config default)")
	configPath := flag.String("config", "", "Path to YAML config file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&spectrumMode, "spectrum", false, "Print ASCII spectrum chart instead of TUI")
	flag.StringVar(&sweepSpec, "sweep", "", "Print table across a temperature range (min:max:step, in K)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *configPath != "" {
		logger.Debug("Loaded config from %s", *configPath)
	}

	if *temp > 0 {
		clamped := cfg.ClampTemperature(*temp)
		if clamped != *temp {
			logger.Warn("Temperature %.0f K outside display range, clamped to %.0f K", *temp, clamped)
		}
		cfg.Display.InitialTempK = clamped
	}

	stateMgr := state.NewManager(cfg)

	headless := summaryMode || spectrumMode || sweepSpec != "" || snapshotPath != ""
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		// Piped output: fall back to the summary instead of an alt-screen TUI.
		logger.Debug("stdout is not a TTY, using summary mode")
		summaryMode = true
		headless = true
	}

	if headless {
		if err := runHeadless(stateMgr, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles all headless output modes without starting the TUI.
func runHeadless(stateMgr *state.Manager, cfg *config.Config) error {
	collection := stateMgr.Collection()

	if sweepSpec != "" {
		min, max, step, err := parseSweep(sweepSpec)
		if err != nil {
			return fmt.Errorf("invalid -sweep: %w", err)
		}
		blackbody.WriteSweepTable(os.Stdout, cfg.ToCalibration(), min, max, step)
		return nil
	}

	if summaryMode {
		blackbody.WriteSummaryTable(os.Stdout, collection)
	}

	if spectrumMode {
		if summaryMode {
			fmt.Println()
		}
		blackbody.WriteSpectrumChart(os.Stdout, collection.Live(), blackbody.DefaultChartConfig())
	}

	if snapshotPath != "" {
		export := blackbody.ExportSnapshot(collection, time.Now())
		if snapshotPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
			return nil
		}
		f, err := os.Create(snapshotPath)
		if err != nil {
			return fmt.Errorf("create snapshot file: %w", err)
		}
		defer f.Close()
		if err := export.WriteJSON(f); err != nil {
			return fmt.Errorf("write JSON to file: %w", err)
		}
	}

	return nil
}

// parseSweep parses a "min:max:step" temperature range in kelvin.
func parseSweep(spec string) (min, max, step float64, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want min:max:step, got %q", spec)
	}

	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parse %q: %w", p, err)
		}
		vals[i] = v
	}

	min, max, step = vals[0], vals[1], vals[2]
	if min < 0 || max < min || step <= 0 {
		return 0, 0, 0, fmt.Errorf("need 0 <= min <= max and step > 0, got %q", spec)
	}
	return min, max, step, nil
}
