package store

import (
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/logger"
)

// Store holds the current parameter record and the preset table.
//
// A Store is not safe for concurrent use. The viewer reads and writes it only
// from the render thread; off-thread producers such as Watcher queue their
// changes and apply them between frames.
type Store struct {
	presets Presets
	current Config

	initialPreset   string
	validTexture    func(string) bool
	fallbackTexture string

	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(Config)
}

// Option configures a Store at construction.
type Option func(*Store)

// WithInitialPreset starts from the named preset instead of "default".
func WithInitialPreset(name string) Option {
	return func(s *Store) {
		s.initialPreset = name
	}
}

// WithTexture sets the starting texture.
func WithTexture(name string) Option {
	return func(s *Store) {
		s.current.Texture = name
	}
}

// WithTextureCheck makes the store replace texture names rejected by valid
// with fallback.
func WithTextureCheck(valid func(string) bool, fallback string) Option {
	return func(s *Store) {
		s.validTexture = valid
		s.fallbackTexture = fallback
	}
}

// New creates a store over presets. It starts from the "default" preset, or
// the first preset by name when there is none, with the default texture.
func New(presets Presets, opts ...Option) *Store {
	s := &Store{
		presets: presets,
		current: Config{Texture: DefaultTexture},
	}
	if cfg, ok := presets["default"]; ok {
		s.current = fromPreset(cfg, DefaultTexture)
	} else if names := presets.Names(); len(names) > 0 {
		s.current = fromPreset(presets[names[0]], DefaultTexture)
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.initialPreset != "" {
		if cfg, ok := presets[s.initialPreset]; ok {
			s.current = fromPreset(cfg, s.current.Texture)
		} else {
			logger.Warn("unknown initial preset, keeping default", zap.String("preset", s.initialPreset))
		}
	}
	s.current = s.normalize(s.current)
	return s
}

func fromPreset(cfg Config, texture string) Config {
	cfg.Texture = texture
	return cfg
}

// Get returns a snapshot of the current parameters.
func (s *Store) Get() Config {
	return s.current
}

// Merge replaces only the fields named by p. Texture is kept unless p names it.
func (s *Store) Merge(p Partial) {
	s.set(p.apply(s.current))
}

// Replace swaps in a whole parameter record, texture included.
func (s *Store) Replace(cfg Config) {
	s.set(cfg)
}

// SelectPreset resets every numeric field and the color from the named
// preset, keeping the current texture. Unknown names are ignored.
func (s *Store) SelectPreset(name string) bool {
	cfg, ok := s.presets[name]
	if !ok {
		logger.Debug("ignoring unknown preset", zap.String("preset", name))
		return false
	}
	logger.Info("preset selected", zap.String("preset", name))
	s.set(fromPreset(cfg, s.current.Texture))
	return true
}

// ListPresetNames returns the preset names in lexical order.
func (s *Store) ListPresetNames() []string {
	return s.presets.Names()
}

// Presets returns the preset table.
func (s *Store) Presets() Presets {
	return s.presets
}

// Subscribe registers fn to be called synchronously after every change. The
// returned function removes it again.
func (s *Store) Subscribe(fn func(Config)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) set(next Config) {
	next = s.normalize(next)
	if next == s.current {
		return
	}
	s.current = next

	// Subscribers may unsubscribe while being notified.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(next)
	}
}

func (s *Store) normalize(cfg Config) Config {
	cfg = cfg.Sanitized()
	if cfg.Texture == "" {
		cfg.Texture = DefaultTexture
	}
	if s.validTexture != nil && !s.validTexture(cfg.Texture) {
		logger.Debug("unknown texture, using fallback",
			zap.String("texture", cfg.Texture),
			zap.String("fallback", s.fallbackTexture),
		)
		cfg.Texture = s.fallbackTexture
	}
	return cfg
}
