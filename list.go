// camcopy: Backup Tesla dashcam clips from removable drives.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// List prints the clip tree for each fixed subdirectory without copying
// anything. Directories recurse fully; only clip files are shown.
func (job *BackupJob) List(w io.Writer) error {
	for _, subdir := range clipSubdirs {
		sourcePath := filepath.Join(job.Source, rootFolder, subdir)
		if err := listContents(w, sourcePath, 1); err != nil {
			return err
		}
	}
	return nil
}

func listContents(w io.Writer, location string, level int) error {
	prefix := strings.Repeat("  ", level)

	fmt.Fprintf(w, "\n%sListing contents of %s\n\n", prefix, location)

	entries, err := os.ReadDir(location)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "%s(missing)\n", prefix)
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := prefix + entry.Name()
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), clipExtension) {
			fmt.Fprintf(w, "%s (File)\n", name)
		}
		if entry.IsDir() {
			fmt.Fprintf(w, "%s (Directory)\n", name)
			if err := listContents(w, filepath.Join(location, entry.Name()), level+1); err != nil {
				return err
			}
		}
	}
	return nil
}
