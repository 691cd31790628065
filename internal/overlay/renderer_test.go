package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/track-overlay/internal/palette"
	"github.com/banshee-data/track-overlay/internal/track"
)

func TestRenderTrack(t *testing.T) {
	t.Parallel()

	points := []track.GroundPoint{
		{X: 0.1, Y: 0.9},
		{X: 0.2, Y: 0.9},
		{X: 0.3, Y: 0.9},
	}

	t.Run("draws colour, path and commit in order", func(t *testing.T) {
		t.Parallel()
		mock := NewMock()
		r := NewRenderer(mock)

		require.NoError(t, r.RenderTrack(palette.Blue, points))

		calls := mock.Snapshot()
		require.Len(t, calls, 6)
		assert.Equal(t, Call{Op: "color", Colour: palette.Blue}, calls[0])
		assert.Equal(t, Call{Op: "move", X: 0.1, Y: 0.9}, calls[1])
		assert.Equal(t, Call{Op: "line", X: 0.2, Y: 0.9}, calls[2])
		assert.Equal(t, Call{Op: "line", X: 0.3, Y: 0.9}, calls[3])
		assert.Equal(t, Call{Op: "draw"}, calls[4])
		assert.Equal(t, Call{Op: "commit", Surface: 0}, calls[5])
	})

	t.Run("single point moves but draws no segment", func(t *testing.T) {
		t.Parallel()
		mock := NewMock()
		r := NewRenderer(mock)

		require.NoError(t, r.RenderTrack(palette.Green, points[:1]))
		assert.Equal(t, []string{"color", "move", "draw", "commit"}, mock.Ops())
	})

	t.Run("empty path still finalises and commits", func(t *testing.T) {
		t.Parallel()
		mock := NewMock()
		r := NewRenderer(mock)

		require.NoError(t, r.RenderTrack(palette.Gray, nil))
		assert.Equal(t, []string{"color", "draw", "commit"}, mock.Ops())
	})

	t.Run("commits to surface zero", func(t *testing.T) {
		t.Parallel()
		mock := NewMock()
		r := NewRenderer(mock)

		require.NoError(t, r.RenderTrack(palette.Gold, points))
		calls := mock.Snapshot()
		assert.Equal(t, 0, calls[len(calls)-1].Surface)
	})

	t.Run("propagates failure from every step", func(t *testing.T) {
		t.Parallel()
		bang := errors.New("protocol not available")
		for _, op := range []string{"color", "move", "line", "draw", "commit"} {
			mock := &Mock{FailOn: op, FailErr: bang}
			r := NewRenderer(mock)

			err := r.RenderTrack(palette.Orange, points)
			require.Error(t, err, "op %s", op)
			assert.ErrorIs(t, err, bang, "op %s", op)
		}
	})
}

func TestRendererClear(t *testing.T) {
	t.Parallel()

	t.Run("clears the surface", func(t *testing.T) {
		t.Parallel()
		mock := NewMock()
		require.NoError(t, NewRenderer(mock).Clear())
		assert.Equal(t, []string{"clear"}, mock.Ops())
	})

	t.Run("propagates clear failure", func(t *testing.T) {
		t.Parallel()
		mock := &Mock{FailOn: "clear"}
		assert.Error(t, NewRenderer(mock).Clear())
	})
}

func TestMockReset(t *testing.T) {
	t.Parallel()

	mock := &Mock{FailOn: "draw"}
	require.NoError(t, mock.SetColor(palette.Blue))
	require.Error(t, mock.DrawPath())
	require.Equal(t, 1, mock.CallCount())

	mock.Reset()
	assert.Zero(t, mock.CallCount())
	assert.NoError(t, mock.DrawPath())
}
