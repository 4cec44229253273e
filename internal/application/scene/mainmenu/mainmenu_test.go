package mainmenu

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pixelmenu/internal/application/debugdraw"
	"github.com/younwookim/pixelmenu/internal/application/scene"
	"github.com/younwookim/pixelmenu/internal/application/scene/scenetest"
	"github.com/younwookim/pixelmenu/internal/application/state"
	"github.com/younwookim/pixelmenu/internal/application/system"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// createTestConfig uses half-second steps so two updates of 0.5 finish a phase
func createTestConfig() config.ScreenConfig {
	return config.ScreenConfig{
		Title:           "main menu",
		CurtainDuration: 1.0,
		EntryDelay:      1.0,
		ExitDelay:       1.0,
	}
}

func newTestMenu(t *testing.T) (*MainMenu, *scenetest.Host) {
	t.Helper()
	host := scenetest.NewHost()
	m := New(host, createTestConfig(), nil, 320, 160)
	m.OnEnter()
	return m, host
}

func step(t *testing.T, m *MainMenu, host *scenetest.Host, in system.InputState) {
	t.Helper()
	host.In = in
	next, err := m.Update(0.5)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestMainMenu_Implements_Scene(t *testing.T) {
	var _ scene.Scene = (*MainMenu)(nil)
}

func TestMainMenu_FullSequence(t *testing.T) {
	m, host := newTestMenu(t)
	assert.Equal(t, state.MainMenuJustEntered, m.State())

	step(t, m, host, system.InputState{})
	assert.Equal(t, state.MainMenuJustEntered, m.State())

	step(t, m, host, system.InputState{})
	assert.Equal(t, state.MainMenuGoingToInvisible, m.State())
	assert.Equal(t, 255.0, m.curtain.Alpha())

	step(t, m, host, system.InputState{})
	assert.InDelta(t, 127.5, m.curtain.Alpha(), 0.001)

	step(t, m, host, system.InputState{})
	assert.Equal(t, state.MainMenuReachedInvisible, m.State())

	// Waits for the player
	step(t, m, host, system.InputState{})
	assert.Equal(t, state.MainMenuReachedInvisible, m.State())

	step(t, m, host, system.InputState{Enter: true})
	assert.Equal(t, state.MainMenuLeaveFadePrompt, m.State())

	step(t, m, host, system.InputState{})
	assert.Equal(t, state.MainMenuGoingToOpaque, m.State())

	step(t, m, host, system.InputState{})
	step(t, m, host, system.InputState{})
	assert.Equal(t, state.MainMenuReachedOpaque, m.State())

	step(t, m, host, system.InputState{})

	host.In = system.InputState{}
	next, err := m.Update(0.5)
	assert.Nil(t, next)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestMainMenu_SkipDuringFadeIn(t *testing.T) {
	m, host := newTestMenu(t)

	step(t, m, host, system.InputState{})
	step(t, m, host, system.InputState{})
	step(t, m, host, system.InputState{})
	require.Equal(t, state.MainMenuGoingToInvisible, m.State())
	require.InDelta(t, 127.5, m.curtain.Alpha(), 0.001)

	step(t, m, host, system.InputState{Enter: true})
	assert.Equal(t, state.MainMenuGoingToOpaque, m.State())
	assert.InDelta(t, 127.5, m.curtain.Alpha(), 0.001, "skip reverses from the current alpha")

	step(t, m, host, system.InputState{})
	assert.Equal(t, state.MainMenuReachedOpaque, m.State())
}

func TestMainMenu_InputIgnoredBeforeFade(t *testing.T) {
	m, host := newTestMenu(t)

	step(t, m, host, system.InputState{Enter: true, Pause: true})
	assert.Equal(t, state.MainMenuJustEntered, m.State())
	assert.False(t, host.OptionsActive)
}

func TestMainMenu_PauseOpensOptions(t *testing.T) {
	m, host := newTestMenu(t)
	for i := 0; i < 4; i++ {
		step(t, m, host, system.InputState{})
	}
	require.Equal(t, state.MainMenuReachedInvisible, m.State())

	step(t, m, host, system.InputState{Pause: true})

	assert.True(t, host.OptionsActive)
	assert.Equal(t, state.MainMenuReachedInvisible, m.State())
}

func TestMainMenu_DebugState(t *testing.T) {
	m, host := newTestMenu(t)

	step(t, m, host, system.InputState{})

	cmds := host.Debug.Layer(debugdraw.TopLayer)
	require.Len(t, cmds, 1)
	assert.Equal(t, debugdraw.Text{X: 0, Y: 0, Text: "state: JUST_ENTERED"}, cmds[0])
}

func TestMainMenu_OnEnterRestarts(t *testing.T) {
	m, host := newTestMenu(t)
	for i := 0; i < 4; i++ {
		step(t, m, host, system.InputState{})
	}
	require.Equal(t, state.MainMenuReachedInvisible, m.State())

	m.OnEnter()

	assert.Equal(t, state.MainMenuJustEntered, m.State())
	assert.True(t, m.curtain.IsOpaque())
	assert.False(t, m.entryDelay.Done())
}

func TestMainMenu_Draw(t *testing.T) {
	m, host := newTestMenu(t)
	screen := ebiten.NewImage(320, 160)

	assert.NotPanics(t, func() {
		for i := 0; i < 8; i++ {
			m.Draw(screen)
			step(t, m, host, system.InputState{Enter: i == 4})
		}
	})
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{0xff, 0x00, 0x00, 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadBackground(t *testing.T) {
	fsys := fstest.MapFS{
		"bg.png":  {Data: encodePNG(t, 32, 16)},
		"bad.png": {Data: []byte("not a png")},
	}

	img, err := LoadBackground(fsys, "bg.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 16), img.Bounds())

	tests := []struct {
		name string
		file string
	}{
		{"missing file", "missing.png"},
		{"not an image", "bad.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := LoadBackground(fsys, tt.file)
			assert.Error(t, err)
			assert.Nil(t, img)
		})
	}
}

func TestLoadBackground_EmbeddedAsset(t *testing.T) {
	img, err := LoadBackground(os.DirFS("../../../../cmd/game/assets"), "main_menu_background.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 320, 160), img.Bounds())
}

func TestNew_MissingBackgroundUsesGradient(t *testing.T) {
	host := scenetest.NewHost()
	bg, err := LoadBackground(fstest.MapFS{}, "main_menu_background.png")
	require.Error(t, err)

	m := New(host, createTestConfig(), bg, 320, 160)

	require.NotNil(t, m.background)
	assert.Equal(t, image.Rect(0, 0, 320, 160), m.background.Bounds())
}
