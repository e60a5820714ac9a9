package sim

// Environment exclusively owns the entities of one session, in insertion order.
// Entities must not be added or removed while a Start, Update, OnKey or draw
// pass is iterating over it.
type Environment struct {
	entities []Entity
	view     Env
}

// NewEnvironment creates an empty registry.
func NewEnvironment() *Environment {
	e := &Environment{}
	e.view = Env{env: e}
	return e
}

// Add appends an entity. Duplicates are allowed.
func (e *Environment) Add(ent Entity) {
	e.entities = append(e.entities, ent)
}

// FirstMatching performs a linear scan and returns the first entity whose
// name equals name. Only uniquely-named entities give a meaningful answer.
func (e *Environment) FirstMatching(name string) (Entity, bool) {
	for _, ent := range e.entities {
		if ent.Name() == name {
			return ent, true
		}
	}
	return nil, false
}

// All returns the registered entities in insertion order for in-place
// mutation by the orchestrator. The slice is shared; callers must not append.
func (e *Environment) All() []Entity {
	return e.entities
}

// Len returns the number of registered entities.
func (e *Environment) Len() int {
	return len(e.entities)
}

// Clear drops every entity.
func (e *Environment) Clear() {
	clear(e.entities)
	e.entities = e.entities[:0]
}

// View returns the lookup-only view passed to entity hooks.
func (e *Environment) View() *Env {
	return &e.view
}
