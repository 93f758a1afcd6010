// Package main runs the sphere next to an ImGui parameter panel.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/config"
	"github.com/Faultbox/supersphere/internal/engine/renderer"
	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/internal/ui"
	"github.com/Faultbox/supersphere/internal/viewer"
)

const title = "SuperSphere Panel"

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("panel error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	backend, err := ui.NewBackend(title, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return err
	}

	r, err := renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		ClearColor: [4]float32{0, 0, 0, 1},
	})
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer r.Close()

	v, err := viewer.New(cfg.Sphere, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return err
	}
	defer v.Close()

	for _, name := range v.Registry.Names() {
		if err := r.Prepare(v.Registry.Resolve(name)); err != nil {
			return fmt.Errorf("prepare programs: %w", err)
		}
	}

	panel, err := ui.NewPanel(v, r)
	if err != nil {
		return err
	}
	defer panel.Close()

	if err := v.Start(); err != nil {
		return fmt.Errorf("start animation: %w", err)
	}

	logger.Info("starting panel", zap.Strings("presets", v.Store.ListPresetNames()))
	backend.Run(func() {
		panel.Render()
		if cfg.Graphics.ShowFPS {
			backend.SetWindowTitle(fmt.Sprintf("%s - %.0f fps", title, v.Clock.FPS()))
		}
	})
	return nil
}
