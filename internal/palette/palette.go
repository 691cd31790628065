// Package palette maps object classifications to fixed overlay colours.
package palette

import (
	"fmt"

	"github.com/banshee-data/track-overlay/internal/track"
)

// RGB is an 8-bit-per-channel display colour.
type RGB struct {
	R, G, B uint8
}

// The six track colours. These are design constants, not configuration.
var (
	Gold    = RGB{0xFF, 0xD7, 0x00}
	Orange  = RGB{0xFF, 0x8C, 0x00}
	Blue    = RGB{0x00, 0x00, 0xFF}
	Green   = RGB{0x32, 0xCD, 0x32}
	DarkRed = RGB{0x8B, 0x00, 0x00}
	Gray    = RGB{0x80, 0x80, 0x80}
)

// ForClass returns the drawing colour for a class type. The mapping is
// total over the closed ClassType set; track.Decode rejects anything
// outside it, so the panic arm is unreachable in the pipeline.
func ForClass(c track.ClassType) RGB {
	switch c {
	case track.ClassBike:
		return Gold
	case track.ClassBus:
		return Orange
	case track.ClassCar:
		return Blue
	case track.ClassHuman:
		return Green
	case track.ClassTruck:
		return DarkRed
	case track.ClassVehicle:
		return Gray
	}
	panic(fmt.Sprintf("palette: no colour for class type %q", c))
}
