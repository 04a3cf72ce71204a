// Package puzzle defines the runnable unit abstraction and the registry the
// CLI dispatches through.
package puzzle

import (
	"fmt"

	"github.com/rcliao/aoc2023/internal/model"
)

// Unit is a single puzzle solution. Solve receives the whole input text and
// returns the answers in part order.
type Unit interface {
	Name() string
	Title() string
	Solve(input string) ([]model.Answer, error)
}

// Registry maps unit names to units. It is built once at startup and only
// read afterwards.
type Registry struct {
	units map[string]Unit
	order []string
}

// NewRegistry returns a registry holding the given units.
func NewRegistry(units ...Unit) *Registry {
	r := &Registry{units: make(map[string]Unit)}
	for _, u := range units {
		r.Register(u)
	}
	return r
}

// Register adds a unit. Registering the same name twice is a programming
// error and panics.
func (r *Registry) Register(u Unit) {
	name := u.Name()
	if _, dup := r.units[name]; dup {
		panic(fmt.Sprintf("puzzle: unit %q registered twice", name))
	}
	r.units[name] = u
	r.order = append(r.order, name)
}

// Lookup returns the unit registered under name.
func (r *Registry) Lookup(name string) (Unit, error) {
	u, ok := r.units[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Names lists unit names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
