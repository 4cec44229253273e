package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "local"
)

// SettingsStore persists Settings as YAML through gdata.
//
// A store without a gdata manager keeps nothing: LoadOrCreate returns
// defaults and Save is a no-op.
type SettingsStore struct {
	data        *gdata.Manager
	resolutions int
}

// OpenSettingsStore opens the platform data directory of appName.
// resolutions is the number of selectable resolutions, used to validate
// loaded settings.
func OpenSettingsStore(appName string, resolutions int) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage %q: %w", appName, err)
	}
	return NewSettingsStore(m, resolutions), nil
}

// NewSettingsStore creates a store on top of an opened gdata manager.
// m may be nil.
func NewSettingsStore(m *gdata.Manager, resolutions int) *SettingsStore {
	return &SettingsStore{data: m, resolutions: resolutions}
}

// LoadOrCreate loads the stored settings. When none are stored yet the
// defaults are written and returned. On any failure the defaults are
// returned together with the error.
func (s *SettingsStore) LoadOrCreate() (*Settings, error) {
	if s.data == nil {
		return s.defaults(), nil
	}

	if !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		settings := s.defaults()
		if err := s.Save(settings); err != nil {
			return settings, err
		}
		log.Printf("[SettingsStore] Created default settings")
		return settings, nil
	}

	data, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return s.defaults(), fmt.Errorf("failed to load settings: %w", err)
	}

	settings := s.defaults()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return s.defaults(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	settings.Normalize(s.resolutions)

	return settings, nil
}

// Save writes settings to storage.
func (s *SettingsStore) Save(settings *Settings) error {
	if s.data == nil {
		return nil
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsStore] Settings saved")
	return nil
}

func (s *SettingsStore) defaults() *Settings {
	settings := DefaultSettings()
	settings.Normalize(s.resolutions)
	return settings
}
