// Package pipeline runs the render loop: it consumes hand-off results,
// decodes and gates track records, and drives the overlay renderer.
package pipeline

import (
	"context"
	"fmt"

	"github.com/banshee-data/track-overlay/internal/bridge"
	"github.com/banshee-data/track-overlay/internal/monitoring"
	"github.com/banshee-data/track-overlay/internal/overlay"
	"github.com/banshee-data/track-overlay/internal/palette"
	"github.com/banshee-data/track-overlay/internal/track"
)

// Loop is the single consumer of the ingestion bridge. One instance
// runs per process; it blocks on the hand-off slot when idle.
type Loop struct {
	bridge   *bridge.Bridge
	renderer *overlay.Renderer
}

// New creates a render loop consuming from b and drawing through r.
func New(b *bridge.Bridge, r *overlay.Renderer) *Loop {
	return &Loop{
		bridge:   b,
		renderer: r,
	}
}

// Run blocks until ctx is cancelled or a drawing call fails. Malformed
// or ineligible messages are logged and skipped; an overlay failure is
// returned so the caller can terminate the process rather than leave
// the overlay half-drawn. On exit the bridge producer is latched off.
func (l *Loop) Run(ctx context.Context) error {
	defer l.bridge.Shutdown()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-l.bridge.Results():
			if err := l.handle(res); err != nil {
				return err
			}
		}
	}
}

// handle processes one hand-off result. A nil return means the loop
// continues; a non-nil return is fatal.
func (l *Loop) handle(res bridge.Result) error {
	if res.Err != nil {
		monitoring.Warnf("[Render] Skipping message: %v", res.Err)
		return nil
	}

	rec, err := track.Decode(res.Payload)
	if err != nil {
		monitoring.Debugf("[Render] Received %q", res.Payload)
		monitoring.Warnf("[Render] Could not decode track record: %v", err)
		return nil
	}

	if !rec.Ended() {
		monitoring.Debugf("[Render] Track %s has not ended, skipping", rec.ID)
		return nil
	}

	class, ok := rec.PrimaryClass()
	if !ok {
		monitoring.Warnf("[Render] Track %s has no classification, skipping", rec.ID)
		return nil
	}

	points := track.SampleTrajectory(rec.Observations)
	if err := l.renderer.RenderTrack(palette.ForClass(class.Type), points); err != nil {
		return fmt.Errorf("render track %s: %w", rec.ID, err)
	}
	monitoring.Debugf("[Render] Drew track %s: %d of %d observations as %s",
		rec.ID, len(points), len(rec.Observations), class.Type)
	return nil
}
