// Package engine runs a game synchronously against a Frontend: start screen,
// fixed-rate frame loop, game-over screen.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Frontend is a presentation surface with an input source.
type Frontend interface {
	// Size returns the drawable size in cells.
	Size() (w, h int)

	// Poll returns the input for the frame starting at now, and whether
	// the player asked to quit. It must not block.
	Poll(now time.Time) (core.InputFrame, bool)

	// WaitKey blocks until a key is pressed and returns its action
	// (ActionQuit for the quit keys, ActionAnyKey otherwise).
	WaitKey(ctx context.Context) (core.Action, error)

	// Present shows a frame.
	Present(scr *core.Screen) error
}

// Result describes how a run ended.
type Result struct {
	Score  int
	Frames uint64
	Quit   bool // Ended by the player or a cancelled context, not by a crash
}

// Runner holds everything one run needs; there are no globals.
type Runner struct {
	Game     registry.Game
	Frontend Frontend
	Clock    core.Clock
	FPS      int
	Seed     int64
	Logger   *log.Logger

	// OnEvent, if set, receives every event the game emits.
	OnEvent func(core.Event)
}

// Run plays one game. It returns when the game is over and acknowledged,
// when the player quits or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Game == nil || r.Frontend == nil {
		return Result{}, errors.New("engine: runner needs a game and a frontend")
	}
	clock := r.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fps := r.FPS
	if fps <= 0 {
		fps = core.DefaultTickRate
	}

	w, h := r.Frontend.Size()
	scr := core.NewScreen(w, h)
	r.Game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: fps, Seed: r.Seed})

	// Start screen
	if err := r.present(scr); err != nil {
		return Result{}, err
	}
	key, err := r.Frontend.WaitKey(ctx)
	if err != nil {
		return r.interrupted(err, Result{})
	}
	if key == core.ActionQuit {
		return Result{Quit: true}, nil
	}
	in := core.NewInputFrame()
	in.Set(core.ActionAnyKey)
	r.dispatch(logger, r.Game.Step(in))
	logger.Info("game started", "game", r.Game.ID(), "fps", fps, "seed", r.Seed)

	pacer := NewPacer(clock, fps)
	var res Result
	for {
		if ctx.Err() != nil {
			res.Quit = true
			res.Score = r.Game.State().Score
			logger.Info("run cancelled", "score", res.Score)
			return res, nil
		}

		in, quit := r.Frontend.Poll(clock.Now())
		if quit {
			res.Quit = true
			res.Score = r.Game.State().Score
			logger.Info("player quit", "score", res.Score, "frames", res.Frames)
			return res, nil
		}

		step := r.Game.Step(in)
		res.Frames++
		res.Score = step.State.Score
		r.dispatch(logger, step)

		if nw, nh := r.Frontend.Size(); nw != scr.Width() || nh != scr.Height() {
			scr.Resize(nw, nh)
		}
		if err := r.present(scr); err != nil {
			return res, err
		}

		if step.State.GameOver {
			logger.Info("game over", "score", res.Score, "frames", res.Frames)
			key, err := r.Frontend.WaitKey(ctx)
			if err != nil {
				return r.interrupted(err, res)
			}
			res.Quit = key == core.ActionQuit
			return res, nil
		}

		pacer.Wait()
	}
}

func (r *Runner) present(scr *core.Screen) error {
	r.Game.Render(scr)
	if err := r.Frontend.Present(scr); err != nil {
		return fmt.Errorf("engine: present frame: %w", err)
	}
	return nil
}

func (r *Runner) dispatch(logger *log.Logger, step core.StepResult) {
	for _, e := range step.Events {
		logger.Debug("event", "kind", e.Kind, "score", e.Score)
		if r.OnEvent != nil {
			r.OnEvent(e)
		}
	}
}

// interrupted turns a cancelled wait into a quit; other errors propagate.
func (r *Runner) interrupted(err error, res Result) (Result, error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		res.Quit = true
		return res, nil
	}
	return res, fmt.Errorf("engine: wait for key: %w", err)
}
