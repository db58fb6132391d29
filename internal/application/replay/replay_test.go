package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stride/internal/domain/vecmath"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Level:   "test",
		Frames: []FrameInput{
			{F: 0, Y: 1, Yaw: 0.5},
			{F: 1, X: -1, S: true, J: true, Yaw: 0.6, Pitch: 0.3},
			{F: 2, E: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, vecmath.Vec2{Y: 1}, input.Move)
	assert.False(t, input.Sprint)
	assert.Equal(t, 0.5, input.Yaw)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, vecmath.Vec2{X: -1}, input.Move)
	assert.True(t, input.Sprint)
	assert.True(t, input.JumpPressed)
	assert.Equal(t, 0.3, input.Pitch)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.EmotePressed)
	assert.False(t, input.JumpPressed)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 0))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10, 0))

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, "test", replayer.Level())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 1.5))

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.Equal(t, 1.5, input.Yaw)
}

func TestReplayData_DT(t *testing.T) {
	assert.Equal(t, 1.0/30.0, ReplayData{TickRate: 30}.DT())
	assert.Equal(t, 1.0/60.0, ReplayData{}.DT(), "missing tick rate defaults to 60")
	assert.Equal(t, 1.0/60.0, NewReplayer(CreateTestReplayData(1, 0)).DT())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 0.25)

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, "test", data.Level)
	assert.Equal(t, 60, data.TickRate)
	assert.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, 1.0, frame.Y)
		assert.Equal(t, 0.25, frame.Yaw)
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	data := CreateTestReplayData(4, 0.1)
	data.Frames[2].J = true

	require.NoError(t, SaveReplay(path, data))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, data.Level, loaded.Level)
	assert.Equal(t, data.TickRate, loaded.TickRate)
	require.Len(t, loaded.Frames, 4)
	assert.True(t, loaded.Frames[2].J)
}

func TestSaveReplay_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "run.json")

	err := SaveReplay(path, CreateTestReplayData(2, 0.1))
	assert.ErrorContains(t, err, "failed to create file")
	assert.NoFileExists(t, path)
}

func TestLoadReplay_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{frames: ["), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})
}
