package jly

import (
	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/sim"
)

// Sprite is the drawable state of one simulation entity, in world units.
type Sprite struct {
	Kind  sim.Kind
	Pos   core.Vec
	Label string
	Scale float64
	Alpha float64
	Tint  bool
}

// Sprites is the sprite table the simulation draws through.
// It implements sim.Visuals and keeps sprites in creation order.
type Sprites struct {
	next  sim.Handle
	items map[sim.Handle]*Sprite
	order []sim.Handle
}

// NewSprites creates an empty sprite table.
func NewSprites() *Sprites {
	return &Sprites{items: make(map[sim.Handle]*Sprite)}
}

// Create adds a sprite and returns its handle.
func (s *Sprites) Create(kind sim.Kind, pos core.Vec, label string) sim.Handle {
	s.next++
	s.items[s.next] = &Sprite{Kind: kind, Pos: pos, Label: label, Scale: 1, Alpha: 1}
	s.order = append(s.order, s.next)
	return s.next
}

// Destroy removes a sprite. Unknown handles are ignored.
func (s *Sprites) Destroy(h sim.Handle) {
	delete(s.items, h)
}

func (s *Sprites) SetPosition(h sim.Handle, pos core.Vec) {
	if sp, ok := s.items[h]; ok {
		sp.Pos = pos
	}
}

func (s *Sprites) SetScale(h sim.Handle, scale float64) {
	if sp, ok := s.items[h]; ok {
		sp.Scale = scale
	}
}

func (s *Sprites) SetAlpha(h sim.Handle, alpha float64) {
	if sp, ok := s.items[h]; ok {
		sp.Alpha = alpha
	}
}

func (s *Sprites) SetTint(h sim.Handle, on bool) {
	if sp, ok := s.items[h]; ok {
		sp.Tint = on
	}
}

// Get returns a copy of the sprite behind a handle.
func (s *Sprites) Get(h sim.Handle) (Sprite, bool) {
	sp, ok := s.items[h]
	if !ok {
		return Sprite{}, false
	}
	return *sp, true
}

// Len returns the number of live sprites.
func (s *Sprites) Len() int {
	return len(s.items)
}

// Each calls fn for every live sprite of the given kind in creation order.
func (s *Sprites) Each(kind sim.Kind, fn func(Sprite)) {
	s.compact()
	for _, h := range s.order {
		if sp := s.items[h]; sp.Kind == kind {
			fn(*sp)
		}
	}
}

// compact drops destroyed handles from the creation order.
func (s *Sprites) compact() {
	if len(s.order) == len(s.items) {
		return
	}
	kept := s.order[:0]
	for _, h := range s.order {
		if _, ok := s.items[h]; ok {
			kept = append(kept, h)
		}
	}
	s.order = kept
}
