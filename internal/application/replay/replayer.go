package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pixelmenu/internal/application/system"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// Version is the replay file format version
const Version = "1.0"

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	keys  []ebiten.Key
	frame int
}

// NewReplayer creates a new replayer from replay data. It fails on key
// names it does not know.
func NewReplayer(data ReplayData) (*Replayer, error) {
	keys := make([]ebiten.Key, len(data.Frames))
	for i, fi := range data.Frames {
		if fi.K == "" {
			continue
		}
		k, err := config.ParseKey(fi.K)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", fi.F, err)
		}
		keys[i] = k
	}

	return &Replayer{
		data: data,
		keys: keys,
	}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll returns the next recorded frame. Once the replay is over it
// returns no input. Recorded actions are replayed as they were resolved
// when recording, so bindings is ignored.
func (r *Replayer) Poll(bindings config.KeyBindings) system.InputState {
	in, _ := r.GetInput()
	return in
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	in := system.InputState{
		Up:          fi.U,
		Down:        fi.D,
		Left:        fi.L,
		Right:       fi.R,
		Enter:       fi.E,
		Pause:       fi.P,
		AnyKey:      fi.K != "",
		Key:         r.keys[r.frame],
		DebugToggle: fi.Dbg,
		MouseX:      fi.MX,
		MouseY:      fi.MY,
		MouseMoved:  fi.MM,
		MouseClick:  fi.MC,
	}
	r.frame++

	return in, true
}

// Done reports whether every frame has been played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (no keys pressed)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
