// Package overlay drives the on-camera overlay drawing service: colour
// selection, path construction and frame commits for tracked-object
// trajectories.
package overlay

import "github.com/banshee-data/track-overlay/internal/palette"

// Surface is the boundary to the overlay drawing service. Coordinates
// are floating point in the surface's normalised frame. Rasterisation,
// surface allocation and video compositing live behind this interface.
type Surface interface {
	// Clear wipes all visible overlay content.
	Clear() error

	// SetColor selects the colour for subsequent path segments.
	SetColor(c palette.RGB) error

	// MoveTo places the drawing cursor without drawing.
	MoveTo(x, y float64) error

	// LineTo draws a straight segment from the cursor and advances it.
	LineTo(x, y float64) error

	// DrawPath finalises the current path onto the pending draw list.
	DrawPath() error

	// Commit makes the pending draws visible on the given surface index.
	Commit(surface int) error
}
