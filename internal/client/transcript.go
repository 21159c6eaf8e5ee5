package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chantrack/internal/utils"
)

// TranscriptStore persists per-channel message history as one JSON
// file per channel name. Handles are session-scoped, so files are
// keyed by name and relinked on startup.
type TranscriptStore struct {
	dataDir string
}

// NewTranscriptStore binds the store to dataDir; empty disables it.
func NewTranscriptStore(dataDir string) *TranscriptStore {
	if dataDir == "" {
		return &TranscriptStore{}
	}
	return &TranscriptStore{dataDir: filepath.Join(dataDir, "transcripts")}
}

type transcriptFile struct {
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
}

// Save writes a channel's history.
func (ts *TranscriptStore) Save(ch *Channel) error {
	if ts.dataDir == "" {
		return nil
	}
	if err := os.MkdirAll(ts.dataDir, 0o755); err != nil {
		return fmt.Errorf("create transcripts dir: %w", err)
	}
	data, err := json.MarshalIndent(transcriptFile{Name: ch.Name, Messages: ch.History}, "", "  ")
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(ts.filePath(ch.Name), data, 0o644)
}

// Load returns the saved history for a channel name, or nil when none
// exists or the file is unreadable.
func (ts *TranscriptStore) Load(name string) []Message {
	if ts.dataDir == "" {
		return nil
	}
	data, err := os.ReadFile(ts.filePath(name))
	if err != nil {
		return nil
	}
	var tf transcriptFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil
	}
	return tf.Messages
}

func (ts *TranscriptStore) filePath(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '#':
			return '_'
		}
		return r
	}, name)
	return filepath.Join(ts.dataDir, safe+".json")
}
