// Package config handles application settings loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Sphere   SphereConfig   `yaml:"sphere"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// SphereConfig selects what the viewer starts with.
type SphereConfig struct {
	Preset      string  `yaml:"preset"`
	Texture     string  `yaml:"texture"`
	Base        string  `yaml:"base"`         // icosahedron, octahedron or tetrahedron
	PresetsFile string  `yaml:"presets_file"` // extra presets (.yaml/.toml), merged over the built-in table
	WatchFile   string  `yaml:"watch_file"`   // parameter file applied live on every write
	Seed        float64 `yaml:"seed"`         // 0 picks a random seed at startup
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Sphere: SphereConfig{
			Preset:  "default",
			Texture: "default",
			Base:    "icosahedron",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
