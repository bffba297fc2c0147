package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/vinopet/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Nil manager is safe to use
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteMilestone(Milestone{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager should have empty dir")
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	records := []ActivityRecord{
		{PetName: "Merlo", Kind: ActivityAdopt},
		{PetName: "Merlo", Kind: ActivityFeed, Wine: "Chateau Test", Experience: 24},
	}
	if err := om.WriteActivity(records[0]); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteActivity(records[1]); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteMilestone(Milestone{Type: MilestoneLevelUp, PetName: "Merlo"}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.MustLoad("")); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "activity.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("activity.csv has %d lines, want 3:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "at,pet_id,pet,kind") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Count(string(data), "experience_gained") != 1 {
		t.Error("header written more than once")
	}
	if !strings.Contains(lines[2], "Chateau Test") {
		t.Errorf("row = %q", lines[2])
	}

	for _, name := range []string{"milestones.csv", "stats.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
