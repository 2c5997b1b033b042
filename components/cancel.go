package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CancelAreaData clears bullets inside a circle while it lasts.
type CancelAreaData struct {
	Field     *donburi.Entry
	Center    dmath.Vec2 // world coordinates
	Radius    float64
	Remaining float64 // seconds
	Canceled  int     // projectiles removed so far
}

var CancelArea = donburi.NewComponentType[CancelAreaData]()
