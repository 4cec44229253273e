package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/pixelmenu/internal/application/system"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// Source reads one frame of input through the given key bindings.
type Source interface {
	Poll(bindings config.KeyBindings) system.InputState
}

// Recorder records the input read from a Source. It is itself a Source,
// so it can be put between the game and the real input.
type Recorder struct {
	source Source
	data   ReplayData
	frame  int
}

// NewRecorder creates a new recorder reading from source
func NewRecorder(source Source) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
	}
}

// Poll reads from the source and records the frame.
func (r *Recorder) Poll(bindings config.KeyBindings) system.InputState {
	in := r.source.Poll(bindings)
	r.RecordFrame(in)
	return in
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in system.InputState) {
	fi := FrameInput{
		F:   r.frame,
		U:   in.Up,
		D:   in.Down,
		L:   in.Left,
		R:   in.Right,
		E:   in.Enter,
		P:   in.Pause,
		Dbg: in.DebugToggle,
		MX:  in.MouseX,
		MY:  in.MouseY,
		MM:  in.MouseMoved,
		MC:  in.MouseClick,
	}
	if in.AnyKey {
		fi.K = config.KeyName(in.Key)
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
