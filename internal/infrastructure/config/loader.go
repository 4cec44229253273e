package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Menu    *MenuConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}

	if cfg.NativeWidth <= 0 || cfg.NativeHeight <= 0 {
		return nil, fmt.Errorf("invalid native size %dx%d in display.json", cfg.NativeWidth, cfg.NativeHeight)
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	return &cfg, nil
}

// LoadMenu loads menu.json
func (l *Loader) LoadMenu() (*MenuConfig, error) {
	var cfg MenuConfig
	if err := l.readJSON("menu.json", &cfg); err != nil {
		return nil, err
	}

	if len(cfg.Resolutions) == 0 {
		return nil, errors.New("menu.json: resolutions must not be empty")
	}

	return &cfg, nil
}

// LoadAll loads all configurations (display, menu)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	menu, err := l.LoadMenu()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Menu:    menu,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}
