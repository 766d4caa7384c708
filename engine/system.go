package engine

// System is a unit of per-frame game logic
type System interface {
	Update(w *World, dt float64)
}

// FnSystem adapts a bare function to the System interface
type FnSystem func(w *World, dt float64)

// Update implements System
func (f FnSystem) Update(w *World, dt float64) {
	f(w, dt)
}

// Pipeline runs systems in a fixed registration order every frame
type Pipeline struct {
	systems []System
}

// NewPipeline builds a pipeline over the given systems
func NewPipeline(systems ...System) *Pipeline {
	return &Pipeline{systems: systems}
}

// Add appends a system to the end of the pipeline
func (p *Pipeline) Add(s System) {
	p.systems = append(p.systems, s)
}

// Run steps every system once with the frame delta in seconds
func (p *Pipeline) Run(w *World, dt float64) {
	for _, s := range p.systems {
		s.Update(w, dt)
	}
}
