// camcopy: Backup Tesla dashcam clips from removable drives.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// BackupJob copies the fixed TeslaCam layout from one source volume into the
// destination. One job per discovered volume, processed sequentially; a job
// holds no state beyond its three fields.
type BackupJob struct {
	Source      string
	Destination string
	Verbose     bool
}

// PathCreationError reports a failure to create one of the fixed layout
// directories. Only the leaf is ever created, so a missing parent segment
// surfaces here instead of being silently repaired.
type PathCreationError struct {
	Path string
	Err  error
}

func (e *PathCreationError) Error() string {
	return fmt.Sprintf("creating directory %s: %v", e.Path, e.Err)
}

func (e *PathCreationError) Unwrap() error { return e.Err }

// CopyError reports a failed file copy. The first one aborts the whole job.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s to %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// Run mirrors the three clip subdirectories into the destination and returns
// the number of source entries processed. The first I/O failure aborts the
// job; there is no retry and no partial-completion bookkeeping.
func (job *BackupJob) Run() (int, error) {
	if job.Verbose {
		fmt.Printf("Backing up from %s to %s\n", job.Source, job.Destination)
	}

	if err := job.checkSpace(); err != nil {
		return 0, err
	}

	total := 0
	for _, subdir := range clipSubdirs {
		processed, err := job.runSubdir(subdir)
		total += processed
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// runSubdir copies one clip subdirectory: files directly inside it, plus files
// one level down inside nested directories (the per-event folders Sentry mode
// creates). Anything deeper is skipped.
func (job *BackupJob) runSubdir(subdir string) (int, error) {
	sourcePath := filepath.Join(job.Source, rootFolder, subdir)
	destPath := filepath.Join(job.Destination, rootFolder, subdir)

	if err := makeDirIfMissing(sourcePath, "Source"); err != nil {
		return 0, err
	}
	if err := makeDirIfMissing(destPath, "Destination"); err != nil {
		return 0, err
	}

	if job.Verbose {
		fmt.Printf("Processing %s from %s to %s\n", subdir, job.Source, job.Destination)
	}

	entries, err := os.ReadDir(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", sourcePath, err)
	}

	var bar *progressbar.ProgressBar
	if !job.Verbose {
		bar = progressbar.NewOptions(
			len(entries),
			progressbar.OptionSetDescription(subdir),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(20),
			progressbar.OptionSetPredictTime(true), // ETA
			progressbar.OptionSetElapsedTime(true), // Elapsed
			progressbar.OptionClearOnFinish(),
		)
	}

	processed := 0
	for _, entry := range entries {
		entryPath := filepath.Join(sourcePath, entry.Name())
		switch {
		case entry.Type().IsRegular():
			if err := copyFile(entryPath, filepath.Join(destPath, entry.Name())); err != nil {
				return processed, err
			}
		case entry.IsDir():
			if err := job.copyNested(entryPath, filepath.Join(destPath, entry.Name())); err != nil {
				return processed, err
			}
		default:
			if job.Verbose {
				fmt.Printf("Unknown entry type: %s\n", entryPath)
			}
		}

		processed++
		if bar != nil {
			bar.Add(1)
		}
		if job.Verbose {
			fmt.Printf("Copying %s to %s\n", entryPath, destPath)
		}
	}

	if job.Verbose {
		fmt.Printf("Processed %d entries from %s to %s\n", processed, sourcePath, destPath)
	}
	return processed, nil
}

// copyNested copies the files inside one nested directory into a same-named
// destination directory. Directories nested further are outside the fixed
// layout and only noted in verbose mode.
func (job *BackupJob) copyNested(srcDir, dstDir string) error {
	if _, err := os.Stat(dstDir); err != nil {
		if err := os.Mkdir(dstDir, 0755); err != nil {
			return &PathCreationError{Path: dstDir, Err: err}
		}
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(srcDir, entry.Name())
		if entry.Type().IsRegular() {
			if err := copyFile(entryPath, filepath.Join(dstDir, entry.Name())); err != nil {
				return err
			}
			continue
		}
		if job.Verbose {
			fmt.Printf("Depth not supported for: %s\n", entryPath)
		}
	}
	return nil
}

// makeDirIfMissing creates path when it is absent. Single-level create only:
// a missing parent segment is a PathCreationError.
func makeDirIfMissing(path, label string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	fmt.Printf("%s path %s does not exist\n", label, path)
	if err := os.Mkdir(path, 0755); err != nil {
		return &PathCreationError{Path: path, Err: err}
	}
	fmt.Printf("Created %s path %s\n", label, path)
	return nil
}

// copyFile overwrites dst with the contents of src, keeping the filename.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &CopyError{Src: src, Dst: dst, Err: err}
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return &CopyError{Src: src, Dst: dst, Err: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return &CopyError{Src: src, Dst: dst, Err: err}
	}
	if err := out.Sync(); err != nil {
		return &CopyError{Src: src, Dst: dst, Err: err}
	}
	return nil
}

// checkSpace refuses to start a job whose copyable bytes exceed the free
// space at the destination.
func (job *BackupJob) checkSpace() error {
	required, err := job.sizeBytes()
	if err != nil {
		return err
	}
	if required == 0 {
		return nil
	}

	free, err := getFreeSpace(job.Destination)
	if err != nil {
		return fmt.Errorf("could not determine free space for %s: %w", job.Destination, err)
	}
	if free < uint64(required) {
		return fmt.Errorf("not enough free space in %s: required %.2f MB, available %.2f MB",
			job.Destination, float64(required)/(1024*1024), float64(free)/(1024*1024))
	}
	return nil
}

// sizeBytes totals the regular files at the two depths Run copies. Missing
// subdirectories contribute nothing; Run creates them later.
func (job *BackupJob) sizeBytes() (int64, error) {
	var total int64
	for _, subdir := range clipSubdirs {
		sourcePath := filepath.Join(job.Source, rootFolder, subdir)
		entries, err := os.ReadDir(sourcePath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return 0, err
		}

		for _, entry := range entries {
			if entry.Type().IsRegular() {
				if info, err := entry.Info(); err == nil {
					total += info.Size()
				}
				continue
			}
			if !entry.IsDir() {
				continue
			}
			nested, err := os.ReadDir(filepath.Join(sourcePath, entry.Name()))
			if err != nil {
				continue
			}
			for _, sub := range nested {
				if !sub.Type().IsRegular() {
					continue
				}
				if info, err := sub.Info(); err == nil {
					total += info.Size()
				}
			}
		}
	}
	return total, nil
}
