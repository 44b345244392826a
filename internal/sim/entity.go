package sim

import (
	"time"

	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/words"
)

// Obstacle is a spawned word the player must complete.
type Obstacle struct {
	ID       ID
	Pos      core.Vec
	Speed    float64 // world units per second along the travel axis
	Depth    float64 // cosmetic fake-3D progress, shooter only
	Entry    words.Entry
	Masked   string
	Resolved bool
	Handle   Handle
}

// Shot is a fired choice. Projectiles fly freely and expire; tween shots
// travel From→To over Duration and resolve against Target on arrival.
type Shot struct {
	ID     ID
	Pos    core.Vec
	Vel    core.Vec
	Choice words.Choice
	Life   time.Duration // remaining life, projectiles only
	Handle Handle

	Tween    bool
	Target   ID
	From     core.Vec
	To       core.Vec
	Elapsed  time.Duration
	Duration time.Duration
}

// Decoration is a purely cosmetic entity. A zero Life means the decoration
// has no time limit and is removed by other means.
type Decoration struct {
	ID     ID
	Kind   Kind
	Pos    core.Vec
	Vel    core.Vec
	Age    time.Duration
	Life   time.Duration
	Label  string
	Handle Handle
}

// progress returns how much of a timed decoration's life has passed (0..1).
func (d *Decoration) progress() float64 {
	if d.Life <= 0 {
		return 0
	}
	return core.ClampF(float64(d.Age)/float64(d.Life), 0, 1)
}

// Stats counts what happened since the last restart.
type Stats struct {
	Spawned    int
	Shots      int
	Hits       int
	Wrong      int
	Collisions int
	Escaped    int
	Expired    int
	Distance   float64 // world units travelled at base speed
	Elapsed    time.Duration
}
