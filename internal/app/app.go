// Package app runs the SuperSphere viewer in an SDL2 window with a keyboard
// control surface.
package app

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/config"
	"github.com/Faultbox/supersphere/internal/engine/input"
	"github.com/Faultbox/supersphere/internal/engine/renderer"
	"github.com/Faultbox/supersphere/internal/engine/window"
	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/internal/viewer"
)

const title = "SuperSphere"

// App is the windowed viewer.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	viewer   *viewer.Viewer
	log      *zap.Logger
}

// New opens the window and prepares every texture variant.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after the window, since the GL context must exist.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [4]float32{0, 0, 0, 1},
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.viewer, err = viewer.New(cfg.Sphere, width, height)
	if err != nil {
		a.Close()
		return nil, err
	}

	for _, name := range a.viewer.Registry.Names() {
		if err := a.renderer.Prepare(a.viewer.Registry.Resolve(name)); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to prepare programs: %w", err)
		}
	}

	a.input = input.New()
	return a, nil
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (a *App) Run() error {
	if err := a.viewer.Start(); err != nil {
		return fmt.Errorf("start animation: %w", err)
	}
	a.running = true
	a.log.Info("starting main loop", zap.Strings("presets", a.viewer.Store.ListPresetNames()))

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
		}

		a.viewer.Update()

		a.renderer.Begin()
		a.renderer.Render(
			a.viewer.Mesh(),
			a.viewer.Material,
			a.viewer.Model(),
			a.viewer.Viewport.View(),
			a.viewer.Viewport.Projection(),
		)
		a.renderer.End()

		a.window.SwapBuffers()

		if a.config.Graphics.ShowFPS {
			a.window.SetTitle(fmt.Sprintf("%s - %.0f fps", title, a.viewer.Clock.FPS()))
		}
	}

	return nil
}

func (a *App) handle(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		// Pixel size, which differs from the event size on high-DPI displays.
		width, height := a.window.DrawableSize()
		a.renderer.Resize(width, height)
		a.viewer.Resize(width, height)

	case input.EventKeyDown:
		a.handleKey(event)
	}
}

func (a *App) handleKey(event input.Event) {
	v := a.viewer
	switch key := event.Key; {
	case key == sdl.K_ESCAPE:
		a.running = false
	case key >= sdl.K_1 && key <= sdl.K_9:
		v.SelectPresetIndex(int(key - sdl.K_1))
	case key == sdl.K_t:
		step := 1
		if event.Shift {
			step = -1
		}
		v.CycleTexture(step)
	case key == sdl.K_UP:
		v.AdjustDetail(viewer.DetailStep)
	case key == sdl.K_DOWN:
		v.AdjustDetail(-viewer.DetailStep)
	case key == sdl.K_EQUALS || key == sdl.K_PLUS || key == sdl.K_KP_PLUS:
		v.AdjustSpeed(viewer.SpeedStep)
	case key == sdl.K_MINUS || key == sdl.K_KP_MINUS:
		v.AdjustSpeed(-viewer.SpeedStep)
	}
}

// Close releases the viewer, GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.viewer != nil {
		if err := a.viewer.Close(); err != nil {
			a.log.Warn("closing viewer", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
