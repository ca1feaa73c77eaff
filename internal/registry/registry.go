package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/pixelgridgo/internal/schema"
)

// Info holds the host-facing display metadata for an effect.
type Info struct {
	Type        string
	DisplayName string
	Description string
	Version     string
}

// RegisteredEffect holds the compiled Go parts of one effect: its display
// metadata and the builder producing its parameter schema.
type RegisteredEffect struct {
	Info        Info
	BuildParams func() (*schema.List, error)
}

// Module is the interface that all effect packages implement to be
// compiled into the suite.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered effects for a single application instance.
// Registration order is preserved; it defines the order of describe output
// and lock files.
type Registry struct {
	effects map[string]*RegisteredEffect
	order   []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		effects: make(map[string]*RegisteredEffect),
	}
}

// RegisterEffect registers an effect under its type name. Registering the
// same type twice is a programmer error and panics.
func (r *Registry) RegisterEffect(effectType string, e *RegisteredEffect) {
	if _, exists := r.effects[effectType]; exists {
		panic(fmt.Sprintf("effect with type '%s' already registered", effectType))
	}
	if e.BuildParams == nil {
		panic(fmt.Sprintf("effect '%s' registered without a parameter builder", effectType))
	}
	slog.Debug("Registering effect.", "type", effectType)
	r.effects[effectType] = e
	r.order = append(r.order, effectType)
}

// Effect returns the registered effect for a type name.
func (r *Registry) Effect(effectType string) (*RegisteredEffect, bool) {
	e, ok := r.effects[effectType]
	return e, ok
}

// Types returns the registered effect type names in registration order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
