// Package loop runs the Input → Update → Draw cycle that hosts a match.
// It wires the input stream, the match controller and the renderer; the
// simulation itself lives in the match package.
package loop

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/tomz197/slither-sprint/internal/config"
	"github.com/tomz197/slither-sprint/internal/draw"
	"github.com/tomz197/slither-sprint/internal/input"
	"github.com/tomz197/slither-sprint/internal/match"
	"github.com/tomz197/slither-sprint/internal/settings"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Options configures a game loop.
type Options struct {
	Config       *config.Config    // nil means config.Default()
	TermSize     draw.TermSizeFunc // nil means the local terminal
	SettingsPath string            // empty disables customization loading
}

// Run drives the game until the players quit or the input stream closes.
func Run(r io.Reader, w io.Writer, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	ctrl, err := match.New(cfg)
	if err != nil {
		return err
	}

	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	// Player presets, live-reloaded when the settings file changes.
	var players atomic.Pointer[settings.Settings]
	initial := settings.Load(opts.SettingsPath)
	players.Store(&initial)
	if opts.SettingsPath != "" {
		watcher, werr := settings.Watch(opts.SettingsPath, func(s settings.Settings) {
			players.Store(&s)
		})
		// A missing watcher only disables live reload.
		if werr == nil {
			defer watcher.Close()
		}
	}

	stream := input.NewStream(r)
	renderer := newRenderer(w, termSize, cfg)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	defer draw.ResetStyle(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	inTitle := true
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		frame := stream.ReadFrame()
		if frame.Quit {
			return nil
		}

		// ===== UPDATE PHASE =====
		if inTitle {
			if frame.Start {
				inTitle = false
			}
		} else {
			if frame.Restart {
				ctrl.RequestRestart()
			}
			if frame.Start && ctrl.Phase() == match.PhaseFinished {
				ctrl.RequestRestart()
			}
			if frame.Pause {
				ctrl.TogglePause()
			}
			ctrl.Update(dt, match.TickInput{P1: frame.P1, P2: frame.P2})
		}

		// ===== DRAW PHASE =====
		if err := renderer.render(ctrl.Snapshot(), *players.Load(), inTitle); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}
