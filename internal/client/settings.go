package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chantrack/internal/utils"
)

// Settings are the user preferences the client persists between runs.
// Tracker state itself is never persisted; only how the user wants the
// summary ordered and rendered.
type Settings struct {
	SortPolicy  string `json:"sortPolicy"`  // insertion | activity | importance
	ShortenMode string `json:"shortenMode"` // off | on | max
	ShowCounts  bool   `json:"showCounts"`
	LastChannel string `json:"lastChannel"` // name of the last read channel
}

// DefaultSettings mirror the tracker config defaults.
func DefaultSettings() Settings {
	return Settings{
		SortPolicy:  "insertion",
		ShortenMode: "on",
		ShowCounts:  true,
	}
}

// SettingsStore loads and saves Settings under a data directory.
type SettingsStore struct {
	dataDir string
	logger  *utils.Logger
	current Settings
}

// NewSettingsStore binds a store to dataDir; an empty dataDir disables
// persistence.
func NewSettingsStore(dataDir string, logger *utils.Logger) *SettingsStore {
	return &SettingsStore{dataDir: dataDir, logger: logger, current: DefaultSettings()}
}

func (ss *SettingsStore) path() string {
	return filepath.Join(ss.dataDir, "settings.json")
}

// Load reads settings from disk, keeping defaults when no file exists.
func (ss *SettingsStore) Load() error {
	if ss.dataDir == "" {
		return nil
	}
	data, err := os.ReadFile(ss.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	ss.current = s
	return nil
}

// Save writes the current settings atomically.
func (ss *SettingsStore) Save() error {
	if ss.dataDir == "" {
		return nil
	}
	if err := os.MkdirAll(ss.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(ss.current, "", "  ")
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(ss.path(), data, 0o644)
}

// Get returns the current settings.
func (ss *SettingsStore) Get() Settings { return ss.current }

// Update applies fn to the current settings and saves.
func (ss *SettingsStore) Update(fn func(*Settings)) {
	fn(&ss.current)
	if err := ss.Save(); err != nil && ss.logger != nil {
		ss.logger.Warnf("failed to save settings: %v", err)
	}
}
