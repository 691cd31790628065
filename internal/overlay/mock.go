package overlay

import (
	"errors"
	"sync"

	"github.com/banshee-data/track-overlay/internal/monitoring"
	"github.com/banshee-data/track-overlay/internal/palette"
)

// Call records a single surface operation for inspection in tests.
type Call struct {
	Op      string
	Colour  palette.RGB
	X, Y    float64
	Surface int
}

// Mock implements Surface with configurable behaviour for testing, and
// doubles as the drawing target for -dev runs without an overlay agent.
type Mock struct {
	mu sync.Mutex

	// Calls records every successful operation in order.
	Calls []Call

	// FailOn names an operation ("clear", "color", "move", "line",
	// "draw", "commit") whose invocations return FailErr.
	FailOn string

	// FailErr is the error returned for FailOn operations. A generic
	// error is used when nil.
	FailErr error

	// Verbose logs each operation as it arrives.
	Verbose bool
}

// NewMock creates an empty recording surface.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) record(c Call) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Verbose {
		monitoring.Logf("[Overlay] %s colour=#%02X%02X%02X point=(%.4f, %.4f) surface=%d",
			c.Op, c.Colour.R, c.Colour.G, c.Colour.B, c.X, c.Y, c.Surface)
	}

	if m.FailOn == c.Op {
		if m.FailErr != nil {
			return m.FailErr
		}
		return errors.New("mock surface failure: " + c.Op)
	}

	m.Calls = append(m.Calls, c)
	return nil
}

// Clear implements Surface.
func (m *Mock) Clear() error { return m.record(Call{Op: "clear"}) }

// SetColor implements Surface.
func (m *Mock) SetColor(c palette.RGB) error { return m.record(Call{Op: "color", Colour: c}) }

// MoveTo implements Surface.
func (m *Mock) MoveTo(x, y float64) error { return m.record(Call{Op: "move", X: x, Y: y}) }

// LineTo implements Surface.
func (m *Mock) LineTo(x, y float64) error { return m.record(Call{Op: "line", X: x, Y: y}) }

// DrawPath implements Surface.
func (m *Mock) DrawPath() error { return m.record(Call{Op: "draw"}) }

// Commit implements Surface.
func (m *Mock) Commit(surface int) error { return m.record(Call{Op: "commit", Surface: surface}) }

// Snapshot returns a copy of the recorded calls.
func (m *Mock) Snapshot() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Call, len(m.Calls))
	copy(out, m.Calls)
	return out
}

// Ops returns just the recorded operation names, in order.
func (m *Mock) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ops := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		ops[i] = c.Op
	}
	return ops
}

// CallCount returns the number of recorded calls.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Reset clears all recorded calls and failure configuration.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = nil
	m.FailOn = ""
	m.FailErr = nil
}
