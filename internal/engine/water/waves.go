package water

import (
	"github.com/go-gl/mathgl/mgl32"

	wmath "github.com/Faultbox/waterscape/pkg/math"
)

// Waves scrolls the two wave normal maps.
// Each offset accumulates along its own direction and wraps into [0,1).
type Waves struct {
	Offset0    mgl32.Vec2
	Offset1    mgl32.Vec2
	Direction0 mgl32.Vec2
	Direction1 mgl32.Vec2
	Time       float32
}

// NewWaves creates wave state with the default scroll directions.
func NewWaves() *Waves {
	return &Waves{
		Direction0: mgl32.Vec2{1, 0.5},
		Direction1: mgl32.Vec2{-0.3, 0.7},
	}
}

// Advance moves both offsets by speed*dt along their directions.
func (w *Waves) Advance(dt, speed float32) {
	if dt <= 0 || speed == 0 {
		return
	}
	w.Time += dt
	step := speed * dt
	w.Offset0 = wrap(w.Offset0.Add(w.Direction0.Mul(step)))
	w.Offset1 = wrap(w.Offset1.Add(w.Direction1.Mul(step)))
}

func wrap(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{wmath.Wrap01(v[0]), wmath.Wrap01(v[1])}
}
