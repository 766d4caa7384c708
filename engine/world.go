package engine

import (
	"reflect"

	"github.com/lixenwraith/nightgrid/vmath"
)

// Entity is a unique identifier for an entity
type Entity uint64

// Component is a marker interface for all components
type Component interface{}

// World contains all entities, their components, and the static wall
// geometry. It is stepped from a single goroutine per frame, so access
// is unsynchronized.
type World struct {
	nextEntityID     Entity
	entities         map[Entity]map[reflect.Type]Component
	componentsByType map[reflect.Type][]Entity // Reverse index: component type -> entities
	walls            []vmath.Rect
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		nextEntityID:     1,
		entities:         make(map[Entity]map[reflect.Type]Component),
		componentsByType: make(map[reflect.Type][]Entity),
	}
}

// Spawn creates a new entity and returns its ID. IDs are never reused.
func (w *World) Spawn() Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities[id] = make(map[reflect.Type]Component)
	return id
}

// Despawn removes an entity and all its components. Despawning an
// unknown entity is a no-op.
func (w *World) Despawn(entity Entity) {
	components, ok := w.entities[entity]
	if !ok {
		return
	}
	for compType := range components {
		w.removeFromTypeIndex(entity, compType)
	}
	delete(w.entities, entity)
}

// Alive reports whether an entity exists in the world
func (w *World) Alive(entity Entity) bool {
	_, ok := w.entities[entity]
	return ok
}

// AddComponent attaches a component to an entity, replacing any
// existing component of the same type
func (w *World) AddComponent(entity Entity, component Component) {
	if _, ok := w.entities[entity]; !ok {
		return
	}
	compType := reflect.TypeOf(component)
	w.entities[entity][compType] = component
	w.addToTypeIndex(entity, compType)
}

// SetComponent is AddComponent under the name used by mutating systems
func (w *World) SetComponent(entity Entity, component Component) {
	w.AddComponent(entity, component)
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entity Entity, componentType reflect.Type) (Component, bool) {
	if components, ok := w.entities[entity]; ok {
		if comp, ok := components[componentType]; ok {
			return comp, true
		}
	}
	return nil, false
}

// RemoveComponent detaches a component from an entity and returns it.
// Removing an absent component is a no-op reporting false.
func (w *World) RemoveComponent(entity Entity, componentType reflect.Type) (Component, bool) {
	if components, ok := w.entities[entity]; ok {
		if comp, present := components[componentType]; present {
			delete(components, componentType)
			w.removeFromTypeIndex(entity, componentType)
			return comp, true
		}
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entity Entity, componentType reflect.Type) bool {
	if components, ok := w.entities[entity]; ok {
		_, ok := components[componentType]
		return ok
	}
	return false
}

// EntitiesWith returns all entities that have every one of the
// specified component types, in ascending entity order
func (w *World) EntitiesWith(componentTypes ...reflect.Type) []Entity {
	if len(componentTypes) == 0 {
		return nil
	}

	candidates := w.componentsByType[componentTypes[0]]
	if candidates == nil {
		return nil
	}

	result := make([]Entity, 0, len(candidates))
	for _, entity := range candidates {
		hasAll := true
		for _, compType := range componentTypes[1:] {
			if !w.HasComponent(entity, compType) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, entity)
		}
	}
	sortEntities(result)
	return result
}

// Entities returns every live entity in ascending ID order
func (w *World) Entities() []Entity {
	result := make([]Entity, 0, len(w.entities))
	for e := range w.entities {
		result = append(result, e)
	}
	sortEntities(result)
	return result
}

// EntityCount returns the number of entities in the world
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Clear removes every entity but keeps the wall geometry and the ID
// counter, so stale handles from before the clear stay dead
func (w *World) Clear() {
	w.entities = make(map[Entity]map[reflect.Type]Component)
	w.componentsByType = make(map[reflect.Type][]Entity)
}

// AddWall registers a static rectangular obstacle
func (w *World) AddWall(r vmath.Rect) {
	w.walls = append(w.walls, r)
}

// Walls returns the static obstacle set. Callers must not mutate it.
func (w *World) Walls() []vmath.Rect {
	return w.walls
}

// ClearWalls removes all static obstacles
func (w *World) ClearWalls() {
	w.walls = nil
}

// addToTypeIndex adds entity to the component type index
func (w *World) addToTypeIndex(entity Entity, componentType reflect.Type) {
	entities := w.componentsByType[componentType]
	for _, e := range entities {
		if e == entity {
			return
		}
	}
	w.componentsByType[componentType] = append(entities, entity)
}

// removeFromTypeIndex removes entity from the component type index
func (w *World) removeFromTypeIndex(entity Entity, componentType reflect.Type) {
	entities := w.componentsByType[componentType]
	for i, e := range entities {
		if e == entity {
			// Remove by swapping with last element and truncating
			entities[i] = entities[len(entities)-1]
			w.componentsByType[componentType] = entities[:len(entities)-1]
			return
		}
	}
}

// sortEntities orders an entity slice ascending by ID. Iteration order
// over map-backed indices is unspecified, and systems that thread an
// RNG through per-entity updates need a stable order to replay.
func sortEntities(entities []Entity) {
	for i := 1; i < len(entities); i++ {
		for j := i; j > 0 && entities[j] < entities[j-1]; j-- {
			entities[j], entities[j-1] = entities[j-1], entities[j]
		}
	}
}
