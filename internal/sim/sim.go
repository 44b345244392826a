// Package sim is the J/LY simulation core: obstacle spawning, the target
// lock, shot resolution, lifecycle bookkeeping, lives and score.
//
// A State is single-threaded and deterministic for a given seed. It owns no
// goroutines and never blocks; the host drives it with Tick and HandleInput
// from one goroutine and mirrors entities on screen through the Visuals
// interface. Game-logic edge cases (firing with no target, resolving twice,
// stale deferred callbacks) are no-ops, never errors.
package sim

import "github.com/vovakirdan/jly-arcade/internal/core"

// ID identifies an obstacle, shot or decoration. IDs grow monotonically and
// are never reused by a State, so a stale ID never matches a new entity.
type ID uint64

// Handle identifies a visual token owned by the Visuals implementation.
// The zero Handle means "no visual".
type Handle uint64

// Kind tells the Visuals implementation what to draw for a token.
type Kind uint8

const (
	KindObstacle Kind = iota + 1 // word bubble or crate carrying a masked label
	KindShot                     // projectile or flying J/LY label
	KindStar                     // background star
	KindCloud                    // background cloud
	KindFlash                    // completed word shown after a hit
	KindBurst                    // expanding ring after a hit
	KindFeedback                 // floating "wrong"/"crash" text
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindShot:
		return "shot"
	case KindStar:
		return "star"
	case KindCloud:
		return "cloud"
	case KindFlash:
		return "flash"
	case KindBurst:
		return "burst"
	case KindFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Visuals is the rendering collaborator. Every entity the core creates gets
// exactly one Create and at most one Destroy; the core never touches a
// handle after destroying it.
type Visuals interface {
	Create(kind Kind, pos core.Vec, label string) Handle
	Destroy(h Handle)
	SetPosition(h Handle, pos core.Vec)
	SetScale(h Handle, scale float64)
	SetAlpha(h Handle, alpha float64)
	SetTint(h Handle, on bool)
}

// NopVisuals discards everything. Useful for headless runs.
type NopVisuals struct {
	next Handle
}

func (n *NopVisuals) Create(Kind, core.Vec, string) Handle {
	n.next++
	return n.next
}

func (n *NopVisuals) Destroy(Handle)               {}
func (n *NopVisuals) SetPosition(Handle, core.Vec) {}
func (n *NopVisuals) SetScale(Handle, float64)     {}
func (n *NopVisuals) SetAlpha(Handle, float64)     {}
func (n *NopVisuals) SetTint(Handle, bool)         {}

// Phase is the game phase. PhasePlaying moves one way to PhaseGameOver,
// which only Restart leaves.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Event names reported in the events drained from a State.
const (
	EventSpawn     = "spawn"
	EventFire      = "fire"
	EventLock      = "lock"
	EventHit       = "hit"
	EventWrong     = "wrong"
	EventCollision = "collision"
	EventEscape    = "escape"
	EventExpire    = "expire"
	EventGameOver  = "game_over"
	EventRestart   = "restart"
)
