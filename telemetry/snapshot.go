package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/vinopet/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// PetSnapshot holds the state of every pet at one moment.
type PetSnapshot struct {
	Version int              `json:"version"`
	At      time.Time        `json:"at"`
	Pets    []components.Pet `json:"pets"`
}

// SavePetSnapshot writes a snapshot to dir.
// Returns the filepath where it was saved.
func SavePetSnapshot(snapshot *PetSnapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("pets_%s.json", snapshot.At.UTC().Format("20060102T150405Z"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadPetSnapshot reads a snapshot from disk.
func LoadPetSnapshot(path string) (*PetSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot PetSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}

	return &snapshot, nil
}
