// camcopy: Tests for the listing mode
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Test that listing shows clip files, hides other files, and recurses into
// directories with deeper indentation
func TestListOutputsClipTree(t *testing.T) {
	job := &BackupJob{Source: t.TempDir()}

	recent := filepath.Join(job.Source, rootFolder, "RecentClips")
	writeClip(t, filepath.Join(recent, "a.mp4"), "a")
	writeClip(t, filepath.Join(recent, "b.txt"), "b")
	writeClip(t, filepath.Join(recent, "c", "d.mp4"), "d")

	var buf bytes.Buffer
	if err := job.List(&buf); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "  a.mp4 (File)") {
		t.Errorf("Expected a.mp4 at level 1, got:\n%s", out)
	}
	if strings.Contains(out, "b.txt") {
		t.Errorf("Expected b.txt to be omitted, got:\n%s", out)
	}
	if !strings.Contains(out, "  c (Directory)") {
		t.Errorf("Expected directory c listed, got:\n%s", out)
	}
	if !strings.Contains(out, "    d.mp4 (File)") {
		t.Errorf("Expected d.mp4 indented one level deeper, got:\n%s", out)
	}
}

// Test that listing a source with no clip subdirectories reports them as
// missing instead of failing
func TestListMissingSubdirs(t *testing.T) {
	job := &BackupJob{Source: t.TempDir()}

	var buf bytes.Buffer
	if err := job.List(&buf); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	missing := strings.Count(buf.String(), "(missing)")
	if missing != len(clipSubdirs) {
		t.Errorf("Expected %d missing markers, got %d", len(clipSubdirs), missing)
	}
}

// Test that listing never writes to the filesystem
func TestListDoesNotWrite(t *testing.T) {
	job := &BackupJob{Source: t.TempDir()}

	var buf bytes.Buffer
	if err := job.List(&buf); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	entries, err := os.ReadDir(job.Source)
	if err != nil {
		t.Fatalf("Failed to read source: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected source untouched, found %d entries", len(entries))
	}
}
