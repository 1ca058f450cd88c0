// Package runner implements the endless runner simulation: a fixed-timestep
// engine advancing a single player through a scrolling obstacle stream, and
// the game-phase state machine around it.
package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Player is the controlled entity. Exactly one per session, owned and
// mutated by the Engine during play, reset by the Controller on scene
// preparation.
type Player struct {
	Body      core.Rect
	VelY      float64 // Vertical velocity, positive = downward
	JumpsUsed int     // Jumps since last ground contact

	// GravityDown is the direction flag for the flip motion model.
	// Unused by the default run model.
	GravityDown bool
}

// Obstacle is a scrolling hazard. IDs are session-scoped, monotonically
// increasing, never reused.
type Obstacle struct {
	Body      core.Rect
	ID        uint64
	Speed     float64 // Extra leftward drift per frame, on top of world scroll
	OnCeiling bool    // Flip modes hang some obstacles from the ceiling
}

// obstaclePool is a reusable arena for the live obstacle sequence. Spawn
// appends, despawn compacts in place preserving spawn order, so steady-state
// ticks allocate nothing.
type obstaclePool struct {
	items  []Obstacle
	nextID uint64
}

func (p *obstaclePool) reset() {
	p.items = p.items[:0]
	p.nextID = 0
}

func (p *obstaclePool) spawn(body core.Rect, speed float64, onCeiling bool) {
	p.nextID++
	p.items = append(p.items, Obstacle{
		Body:      body,
		ID:        p.nextID,
		Speed:     speed,
		OnCeiling: onCeiling,
	})
}

// advance moves every obstacle left by the world scroll distance plus its
// own drift for this tick.
func (p *obstaclePool) advance(scroll, frameScale float64) {
	for i := range p.items {
		p.items[i].Body.X -= scroll + p.items[i].Speed*frameScale
	}
}

// compact drops obstacles whose trailing edge has fully passed the left
// margin. Order-preserving in-place filter.
func (p *obstaclePool) compact(margin float64) {
	live := p.items[:0]
	for _, o := range p.items {
		if o.Body.Right() > -margin {
			live = append(live, o)
		}
	}
	p.items = live
}

func (p *obstaclePool) live() []Obstacle {
	return p.items
}
