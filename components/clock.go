package components

import "github.com/yohamta/donburi"

// ClockData is the frame clock supplied by the host loop.
type ClockData struct {
	DeltaTime float64 // seconds covered by the current frame
	Frame     int     // frames simulated so far
}

var Clock = donburi.NewComponentType[ClockData]()
