package components

import (
	"math"

	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CoordinateSystem selects how a spawn location is interpreted.
type CoordinateSystem int

const (
	// View coordinates are relative to a field: (0,0) is its bottom-left
	// corner and (1,1) its top-right corner, before camera rotation.
	View CoordinateSystem = iota
	// World coordinates are absolute.
	World
)

// FieldData is one play field: the area a player dodges in and that attack
// patterns spawn into.
type FieldData struct {
	Index    int
	Center   dmath.Vec2 // world position of the field center
	Size     dmath.Vec2 // width and height in world units
	Rotation float64    // camera rotation in degrees
	Player   *donburi.Entry
	Target   *donburi.Entry // the opposing field
}

var Field = donburi.NewComponentType[FieldData]()

// WorldPoint converts a location given in coordSys to world coordinates.
func (f *FieldData) WorldPoint(p dmath.Vec2, coordSys CoordinateSystem) dmath.Vec2 {
	if coordSys == World {
		return p
	}
	local := dmath.Vec2{
		X: (p.X - 0.5) * f.Size.X,
		Y: (p.Y - 0.5) * f.Size.Y,
	}
	local = gamemath.Rotate(local, f.Rotation)
	return f.Center.Add(local)
}

// ViewPoint converts a world location to view coordinates of this field.
func (f *FieldData) ViewPoint(world dmath.Vec2) dmath.Vec2 {
	local := gamemath.Rotate(world.Sub(f.Center), -f.Rotation)
	v := dmath.Vec2{}
	if f.Size.X != 0 {
		v.X = local.X/f.Size.X + 0.5
	}
	if f.Size.Y != 0 {
		v.Y = local.Y/f.Size.Y + 0.5
	}
	return v
}

// Contains reports whether a world point lies inside the field, grown by
// margin world units on every side.
func (f *FieldData) Contains(world dmath.Vec2, margin float64) bool {
	local := gamemath.Rotate(world.Sub(f.Center), -f.Rotation)
	return math.Abs(local.X) <= f.Size.X/2+margin && math.Abs(local.Y) <= f.Size.Y/2+margin
}

// PlayerPosition returns the world position of the field's player.
func (f *FieldData) PlayerPosition() (dmath.Vec2, bool) {
	if f.Player == nil || !f.Player.Valid() || !f.Player.HasComponent(Player) {
		return dmath.Vec2{}, false
	}
	return Player.Get(f.Player).Position, true
}

// AngleTowardPlayer returns the firing angle from p toward this field's
// player, relative to coordSys: view angles exclude the camera rotation.
// Without a player the angle points straight down the field.
func (f *FieldData) AngleTowardPlayer(p dmath.Vec2, coordSys CoordinateSystem) float64 {
	from := f.WorldPoint(p, coordSys)
	angle := 180 + f.Rotation
	if target, ok := f.PlayerPosition(); ok {
		angle = gamemath.AngleBetween(from, target)
	}
	if coordSys == View {
		angle -= f.Rotation
	}
	return angle
}

// TargetField returns the opposing field, if linked.
func (f *FieldData) TargetField() (*FieldData, bool) {
	if f.Target == nil || !f.Target.Valid() {
		return nil, false
	}
	return Field.Get(f.Target), true
}
