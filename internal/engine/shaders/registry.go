package shaders

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateVariant is returned when a name is registered twice.
var ErrDuplicateVariant = errors.New("texture variant already registered")

// Registry maps texture names to programs. Entries are never replaced.
type Registry struct {
	defaultName string
	programs    map[string]*Program
}

// NewRegistry creates an empty registry whose fallback is defaultName.
func NewRegistry(defaultName string) *Registry {
	return &Registry{
		defaultName: defaultName,
		programs:    make(map[string]*Program),
	}
}

// Register adds a program under p.Name.
func (r *Registry) Register(p Program) error {
	if p.Name == "" {
		return errors.New("register program: empty name")
	}
	if _, ok := r.programs[p.Name]; ok {
		return fmt.Errorf("register %q: %w", p.Name, ErrDuplicateVariant)
	}
	p.Uniforms = append([]UniformSpec(nil), p.Uniforms...)
	r.programs[p.Name] = &p
	return nil
}

// Resolve returns the named program, or the default one for unknown names.
func (r *Registry) Resolve(name string) *Program {
	if p, ok := r.programs[name]; ok {
		return p
	}
	return r.programs[r.defaultName]
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.programs[name]
	return ok
}

// Default returns the fallback program.
func (r *Registry) Default() *Program {
	return r.programs[r.defaultName]
}

// DefaultName returns the fallback variant name.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
