// camcopy: Tests for mount-root resolution and volume discovery
package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Test the platform to mount-root table
func TestMountRootFor(t *testing.T) {
	tests := []struct {
		goos    string
		want    string
		wantErr bool
	}{
		{"darwin", "/Volumes", false},
		{"linux", "/mnt", false},
		{"windows", "", true},
		{"plan9", "", true},
	}

	for _, test := range tests {
		got, err := mountRootFor(test.goos)
		if test.wantErr {
			if err == nil {
				t.Errorf("Expected error for %s, got %q", test.goos, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for %s: %v", test.goos, err)
		}
		if got != test.want {
			t.Errorf("Expected %q for %s, got %q", test.want, test.goos, got)
		}
	}
}

// Test that only prefix-matched child directories qualify as volumes
func TestDiscoverVolumes(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"TESLADRIVE", "TESLADRIVE 1", "OTHERDISK"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	// A prefix-matched plain file must not qualify
	if err := os.WriteFile(filepath.Join(root, "TESLADRIVE.img"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	volumes, err := discoverVolumes(root)
	if err != nil {
		t.Fatalf("discoverVolumes failed: %v", err)
	}
	if len(volumes) != 2 {
		t.Fatalf("Expected 2 volumes, got %d: %v", len(volumes), volumes)
	}
	// os.ReadDir returns sorted entries
	if filepath.Base(volumes[0]) != "TESLADRIVE" || filepath.Base(volumes[1]) != "TESLADRIVE 1" {
		t.Errorf("Unexpected volumes: %v", volumes)
	}
}

// Test that no matches yields an empty result, not an error
func TestDiscoverVolumesEmpty(t *testing.T) {
	volumes, err := discoverVolumes(t.TempDir())
	if err != nil {
		t.Fatalf("discoverVolumes failed: %v", err)
	}
	if len(volumes) != 0 {
		t.Errorf("Expected no volumes, got %v", volumes)
	}
}

// Test that a missing mount root is an error
func TestDiscoverVolumesMissingRoot(t *testing.T) {
	if _, err := discoverVolumes(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for a missing mount root")
	}
}

// Test free space lookup on a real directory
func TestGetFreeSpace(t *testing.T) {
	free, err := getFreeSpace(t.TempDir())
	if err != nil {
		t.Fatalf("getFreeSpace failed: %v", err)
	}
	if free == 0 {
		t.Error("Expected nonzero free space")
	}
}
