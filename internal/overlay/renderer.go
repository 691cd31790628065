package overlay

import (
	"fmt"

	"github.com/banshee-data/track-overlay/internal/palette"
	"github.com/banshee-data/track-overlay/internal/track"
)

// targetSurface is the overlay surface index all frames commit to.
const targetSurface = 0

// Renderer drives the surface through the per-track draw sequence. It
// is sequential: one track is fully drawn and committed before the next
// is taken.
type Renderer struct {
	surface Surface
}

// NewRenderer creates a Renderer drawing onto the given surface.
func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s}
}

// Clear wipes the overlay. It is called once at startup; afterwards
// each committed path replaces the previous frame's visible content via
// the surface's own frame semantics, with no per-message clear.
func (r *Renderer) Clear() error {
	if err := r.surface.Clear(); err != nil {
		return fmt.Errorf("clear overlay: %w", err)
	}
	return nil
}

// RenderTrack draws one trajectory polyline in the given colour and
// commits the frame. An empty point set still finalises and commits, so
// the overlay moves on to an empty frame rather than keeping a stale
// path.
//
// Any surface failure is returned to the caller: there is no
// partial-overlay recovery. Draw calls have been seen to fail in the field
// without a diagnosed root cause ("Protocol not available"), and the
// choice is to fail fast rather than leave a half-drawn frame on
// screen.
func (r *Renderer) RenderTrack(colour palette.RGB, points []track.GroundPoint) error {
	if err := r.surface.SetColor(colour); err != nil {
		return fmt.Errorf("set colour: %w", err)
	}
	if len(points) > 0 {
		if err := r.surface.MoveTo(points[0].X, points[0].Y); err != nil {
			return fmt.Errorf("move to path start: %w", err)
		}
		for _, p := range points[1:] {
			if err := r.surface.LineTo(p.X, p.Y); err != nil {
				return fmt.Errorf("draw path segment: %w", err)
			}
		}
	}
	if err := r.surface.DrawPath(); err != nil {
		return fmt.Errorf("finalise path: %w", err)
	}
	if err := r.surface.Commit(targetSurface); err != nil {
		return fmt.Errorf("commit frame: %w", err)
	}
	return nil
}
