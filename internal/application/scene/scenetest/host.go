// Package scenetest provides a scene.Host double for scene tests.
package scenetest

import (
	"github.com/younwookim/pixelmenu/internal/application/debugdraw"
	"github.com/younwookim/pixelmenu/internal/application/system"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

// Host is an in-memory scene.Host. Stored plays the role of the settings
// on disk and Local the live settings.
type Host struct {
	In     system.InputState
	Local  *config.Settings
	Stored *config.Settings

	LoadErr error
	SaveErr error
	Loads   int
	Saves   int

	ResolutionCalls []int
	OptionsActive   bool
	OptionsCalls    []bool

	Debug *debugdraw.DebugDraw
}

// NewHost creates a host with default settings both live and stored.
func NewHost() *Host {
	return &Host{
		Local:  config.DefaultSettings(),
		Stored: config.DefaultSettings(),
		Debug:  debugdraw.New(true),
	}
}

// Input implements scene.Host.
func (h *Host) Input() system.InputState { return h.In }

// Settings implements scene.Host.
func (h *Host) Settings() *config.Settings { return h.Local }

// LoadOrCreateSettings implements scene.Host.
func (h *Host) LoadOrCreateSettings() error {
	h.Loads++
	if h.LoadErr != nil {
		return h.LoadErr
	}
	*h.Local = *h.Stored.Clone()
	return nil
}

// SaveSettings implements scene.Host.
func (h *Host) SaveSettings() error {
	h.Saves++
	if h.SaveErr != nil {
		return h.SaveErr
	}
	h.Stored = h.Local.Clone()
	return nil
}

// SetResolution implements scene.Host.
func (h *Host) SetResolution(index int) {
	h.Local.ResolutionScale = index
	h.ResolutionCalls = append(h.ResolutionCalls, index)
}

// SetOptionsMenuActive implements scene.Host.
func (h *Host) SetOptionsMenuActive(active bool) {
	h.OptionsActive = active
	h.OptionsCalls = append(h.OptionsCalls, active)
}

// DebugDraw implements scene.Host.
func (h *Host) DebugDraw() *debugdraw.DebugDraw { return h.Debug }
