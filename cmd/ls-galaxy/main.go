// Command ls-galaxy renders a procedural spiral galaxy in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/logging"
	"github.com/litescript/ls-galaxy/internal/render"
	"github.com/litescript/ls-galaxy/internal/report"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/ui"
	"github.com/litescript/ls-galaxy/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	curveMode     bool
	histogramMode bool
	frameCount    int
)

const (
	defaultFPS = 30
	minFPS     = 1
	maxFPS     = 60

	// headless canvas size when stdout is not a terminal
	defaultCols = 100
	defaultRows = 40
)

func main() {
	// Parse flags
	fps := flag.Int("fps", defaultFPS, "Frames per second")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file (TUI mode discards logs otherwise)")
	seed := flag.Uint64("seed", 1, "Random seed for particle generation")
	preset := flag.Int("preset", 0, "Start from preset galaxy 1-8 (0 keeps the defaults)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.BoolVar(&summaryMode, "summary", false, "Print particle statistics instead of TUI")
	flag.BoolVar(&curveMode, "curve", false, "Plot the rotation curve with and without dark matter")
	flag.BoolVar(&histogramMode, "histogram", false, "Plot the radial star density")
	flag.IntVar(&frameCount, "frames", 0, "Render N frames to stdout without the TUI")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Validate frame rate
	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg := scene.DefaultConfig()
	cfg.Seed = *seed

	// Headless mode: no TUI
	headless := summaryMode || curveMode || histogramMode || frameCount > 0
	if headless {
		if err := runHeadless(ctx, cfg, *preset, time.Second/time.Duration(*fps), logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The TUI owns stderr, so logs go to a file or nowhere
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	canvas := render.NewCanvas(0, 0)
	sc := scene.New(cfg, canvas, logger)
	if err := selectPreset(sc, *preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create TUI model
	model := ui.New(sc, canvas, ui.Options{FrameInterval: time.Second / time.Duration(*fps)})

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	logger.Info("%s starting at %d fps", version.String(), *fps)

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// selectPreset applies the 1-based preset flag; 0 keeps the defaults.
func selectPreset(sc *scene.Scene, n int) error {
	if n == 0 {
		return nil
	}
	if err := sc.SelectPreset(n - 1); err != nil {
		return fmt.Errorf("preset flag: %w", err)
	}
	return nil
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, cfg scene.Config, preset int, interval time.Duration, logger *logging.Logger) error {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	cols, rows := defaultCols, defaultRows
	if isTTY {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols, rows = w, h-1
		}
	}

	canvas := render.NewCanvas(cols, rows)
	sc := scene.New(cfg, canvas, logger)
	if err := selectPreset(sc, preset); err != nil {
		return err
	}

	if summaryMode || histogramMode {
		p := sc.Params()
		start := time.Now()
		dist, err := p.Distribution()
		if err != nil {
			return err
		}
		buf, err := galaxy.NewGenerator(cfg.Seed).Generate(&p, dist)
		if err != nil {
			return err
		}
		elapsed := logging.Since(start)

		if summaryMode {
			report.WriteSummary(os.Stdout, &p, buf, elapsed)
		}
		if histogramMode {
			if summaryMode {
				fmt.Println()
			}
			report.WriteRadialHistogram(os.Stdout, buf, p.FarFieldRadius(), 40, 12)
		}
	}

	if curveMode {
		p := sc.Params()
		report.WriteRotationCurve(os.Stdout, p.FarFieldRadius(), 60, 12)
	}

	if frameCount > 0 {
		return runFrames(ctx, sc, canvas, interval, isTTY)
	}
	return nil
}

// runFrames renders frameCount frames to stdout. On a terminal each frame is
// coloured and redrawn in place; otherwise plain frames are appended.
func runFrames(ctx context.Context, sc *scene.Scene, canvas *render.Canvas, interval time.Duration, isTTY bool) error {
	sc.Resize(canvas.Viewport())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; i < frameCount; i++ {
		if err := sc.Frame(time.Now()); err != nil {
			return err
		}

		status := fmt.Sprintf("frame %d/%d  t=%.1f Myr  %d particles",
			i+1, frameCount, sc.Time()/1e6, sc.Status().Particles())
		if isTTY {
			fmt.Print("\x1b[H" + canvas.String() + "\n" + status + "\n")
		} else {
			report.WriteFrame(os.Stdout, canvas.Lines(), status)
		}

		if i == frameCount-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
