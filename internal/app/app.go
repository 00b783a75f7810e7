// Package app runs the interactive demo: an SDL window where a click sends
// the car driving to the clicked point.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/engine/gesture"
	"github.com/Faultbox/movingcar/internal/engine/input"
	"github.com/Faultbox/movingcar/internal/engine/renderer"
	"github.com/Faultbox/movingcar/internal/engine/window"
	"github.com/Faultbox/movingcar/internal/logger"
	"github.com/Faultbox/movingcar/internal/scene"
)

const title = "Moving Car"

// App owns the window and the car scene.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	taps     *gesture.TapRecognizer
	log      *zap.Logger
}

// New opens the window and sets up the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		input: input.New(),
		scene: scene.New(cfg.Vehicle, nil, nil),
		taps:  gesture.NewTapRecognizer(),
		log:   logger.App.L(),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		Style:  scene.DefaultStyle(),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.resize(width, height)
	a.updateTitle()

	return a, nil
}

// Run loops until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true
	frames := 0
	fpsTimer := time.Now()

	a.log.Info("starting loop")
	for a.running {
		if a.input.Update() {
			a.running = false
		}
		for _, e := range a.input.Events() {
			if err := a.handle(e); err != nil {
				return err
			}
		}

		a.scene.Update()
		a.renderer.DrawFrame(a.scene.Frame())
		a.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frames), zap.Bool("animating", a.scene.Animating()))
			frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// Close releases the renderer and the window.
func (a *App) Close() {
	a.log.Info("closing")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handle(e input.Event) error {
	switch e.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		a.resize(a.window.Size())

	case input.EventPointerDown:
		a.taps.Down(e.X, e.Y, e.At)

	case input.EventPointerMove:
		a.taps.Move(e.X, e.Y)

	case input.EventPointerUp:
		p, ok := a.taps.Up(e.X, e.Y, e.At)
		if !ok {
			return nil
		}
		if err := a.scene.MoveTo(p.X, p.Y); err != nil {
			if errors.Is(err, scene.ErrNotLaidOut) {
				return nil
			}
			return fmt.Errorf("move to (%.0f, %.0f): %w", p.X, p.Y, err)
		}

	case input.EventKeyDown:
		a.handleKey(e.Key)
	}
	return nil
}

func (a *App) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE:
		a.running = false
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		a.scene.AdjustRadius(1)
		a.updateTitle()
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		a.scene.AdjustRadius(-1)
		a.updateTitle()
	case sdl.K_d:
		a.scene.SetShowDestination(!a.scene.ShowDestination())
		a.log.Debug("destination ghost", zap.Bool("shown", a.scene.ShowDestination()))
	case sdl.K_s:
		a.saveSettings()
	}
}

// saveSettings persists the radius and ghost toggle for the next start.
func (a *App) saveSettings() {
	a.cfg.Vehicle.Radius = a.scene.Radius()
	a.cfg.Vehicle.ShowDestination = a.scene.ShowDestination()
	if err := a.cfg.Save(); err != nil {
		a.log.Warn("failed to save settings", zap.Error(err))
		return
	}
	a.log.Info("settings saved", zap.Int("radius", a.cfg.Vehicle.Radius))
}

func (a *App) resize(width, height int) {
	a.scene.Layout(width, height)
	a.renderer.Resize(width, height)
	a.renderer.SetDrawable(a.window.DrawableSize())
}

func (a *App) updateTitle() {
	a.window.SetTitle(fmt.Sprintf("%s (radius %d)", title, a.scene.Radius()))
}
