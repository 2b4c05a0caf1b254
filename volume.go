// camcopy: Backup Tesla dashcam clips from removable drives.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/disk"
)

// mountRootFor returns where removable volumes appear for the given OS.
// Platforms without a fixed mount root are not supported.
func mountRootFor(goos string) (string, error) {
	switch goos {
	case "darwin":
		return "/Volumes", nil
	case "linux":
		return "/mnt", nil
	case "windows":
		return "", fmt.Errorf("running on Windows, not supported")
	default:
		return "", fmt.Errorf("running on %s, not supported", goos)
	}
}

// discoverVolumes lists the immediate child directories of mountRoot whose
// name starts with drivePrefix. No matches is an empty slice, not an error.
func discoverVolumes(mountRoot string) ([]string, error) {
	entries, err := os.ReadDir(mountRoot)
	if err != nil {
		return nil, fmt.Errorf("reading mount root %s: %w", mountRoot, err)
	}

	var volumes []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), drivePrefix) {
			volumes = append(volumes, filepath.Join(mountRoot, entry.Name()))
		}
	}
	return volumes, nil
}

// isMounted reports whether path is a real mount point. A prefix-matched
// directory that is not one still gets processed; the answer only feeds a
// verbose diagnostic.
func isMounted(path string) bool {
	parts, err := disk.Partitions(false)
	if err != nil {
		return false
	}
	for _, part := range parts {
		if part.Mountpoint == path {
			return true
		}
	}
	return false
}

// getFreeSpace returns the available bytes on the filesystem holding path
func getFreeSpace(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}
