package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	NativeWidth  int    `json:"nativeWidth"`
	NativeHeight int    `json:"nativeHeight"`
	TPS          int    `json:"tps"`
	Title        string `json:"title"`
}

// MenuConfig is the root config for menu.json
type MenuConfig struct {
	MainMenu    ScreenConfig `json:"mainMenu"`
	OptionsMenu ScreenConfig `json:"optionsMenu"`

	// Resolutions are the labels cycled by the options menu.
	// Entry i scales the native size by i+1, the last entry is fullscreen.
	Resolutions []string `json:"resolutions"`
}

// ScreenConfig configures the fade timing of a menu screen
type ScreenConfig struct {
	Title           string  `json:"title"`
	Background      string  `json:"background,omitempty"`
	CurtainDuration float64 `json:"curtainDuration"` // seconds
	EntryDelay      float64 `json:"entryDelay"`      // seconds
	ExitDelay       float64 `json:"exitDelay"`       // seconds
}
