// Package sim implements the frame-stepped maze simulation: the entity
// contract, the entity registry, the three entity kinds (blocks, ghosts and
// pacman) and the orchestrator that sequences one frame.
//
// The package is single-threaded. Nothing in it blocks except Pacer.Wait.
package sim

import "github.com/vovakirdan/maze-chase/internal/core"

// Entity is the capability set shared by every simulated object.
type Entity interface {
	// Name identifies the entity. Names are not unique: every block is "block".
	Name() string

	// Pos returns the entity's top-left world position in pixels.
	Pos() (x, y int)

	// Visual describes how the entity is drawn.
	Visual() Visual

	// Color is the draw color used for line visuals.
	Color() core.Color

	// Start is called exactly once, after every entity of the session has
	// been registered and before the first frame. Siblings may not have
	// started yet.
	Start(env *Env)

	// Update advances the entity by one frame. It may read siblings through
	// env but must not change registry membership.
	Update(env *Env)

	// OnKey is called for every key-down event. There is no focus: each
	// entity decides on its own whether the key is relevant.
	OnKey(k core.Key)
}

// Env is the view of the registry handed to entities during Start and Update.
// It exposes lookups only; membership changes go through the Environment owner.
type Env struct {
	env *Environment
}

// FirstMatching returns the first entity registered under name.
func (v *Env) FirstMatching(name string) (Entity, bool) {
	return v.env.FirstMatching(name)
}

// Len returns the number of registered entities.
func (v *Env) Len() int {
	return len(v.env.entities)
}

// At returns the i-th entity in registration order.
func (v *Env) At(i int) Entity {
	return v.env.entities[i]
}

// Each calls fn for every entity in registration order until fn returns false.
func (v *Env) Each(fn func(Entity) bool) {
	for _, e := range v.env.entities {
		if !fn(e) {
			return
		}
	}
}
