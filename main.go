// camcopy: Backup Tesla dashcam clips from removable drives.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	var destination string
	var verbose, listOnly, interactive bool

	var rootCmd = &cobra.Command{
		Use:   "camcopy",
		Short: "Backup Tesla dashcam clips from removable drives",
		Long: `camcopy finds mounted TESLADRIVE volumes and mirrors their TeslaCam
folders into a backup destination.

Features:
- Discovers TESLADRIVE* volumes under the platform mount root (/Volumes or /mnt)
- Mirrors the fixed TeslaCam layout: RecentClips, SavedClips, SentryClips
- Copies Sentry event folders one level deep
- Overwrites files already present at the destination
- Checks destination free space before copying
- Listing mode to inspect pending clips without copying
`,
		Example: `  # Copy clips from every TESLADRIVE volume to ~/dashcam
  camcopy --destination ~/dashcam

  # See what would be copied, without copying
  camcopy --destination ~/dashcam --list-only

  # Prompted setup
  camcopy --interactive
`,
		Run: func(cmd *cobra.Command, args []string) {
			if interactive {
				destination, listOnly, verbose = interactivePrompt()
			}
			if destination == "" {
				fmt.Fprintln(os.Stderr, "[FATAL] Destination is required")
				os.Exit(1)
			}
			checkDirExists(destination, "Destination")

			mountRoot, err := mountRootFor(runtime.GOOS)
			if err != nil {
				fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
				os.Exit(1)
			}
			if verbose {
				fmt.Printf("System mount is set to %s\n", mountRoot)
			}

			volumes, err := discoverVolumes(mountRoot)
			if err != nil {
				fatal(err)
			}
			if len(volumes) == 0 {
				color.New(color.FgYellow).Printf("No %s volumes found under %s\n", drivePrefix, mountRoot)
				return
			}

			for _, volume := range volumes {
				fmt.Printf("Checking directory: %s\n", volume)
				fmt.Printf("Directory: %s is a Tesla Drive\n", volume)
				fmt.Printf("Destination: %s is the backup destination\n", destination)
				if verbose && !isMounted(volume) {
					fmt.Printf("Note: %s is not a mount point\n", volume)
				}

				job := &BackupJob{Source: volume, Destination: destination, Verbose: verbose}
				if listOnly {
					if err := job.List(os.Stdout); err != nil {
						fatal(err)
					}
					continue
				}

				copied, err := job.Run()
				if err != nil {
					fatal(err)
				}
				color.New(color.FgGreen).Printf("Copied %d entries from %s\n", copied, volume)
			}
		},
	}

	rootCmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination directory")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose additional info")
	rootCmd.Flags().BoolVarP(&listOnly, "list-only", "l", false, "List pending clips instead of copying")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run in interactive mode (prompts for input)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func checkDirExists(path string, label string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %s directory '%s' does not exist: %v\n", label, path, err)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "[FATAL] %s path '%s' is not a directory\n", label, path)
		os.Exit(1)
	}
}

// fatal reports a job error and aborts the run. Copy and path-creation
// failures are not retried.
func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "[FATAL] %v\n", err)
	os.Exit(1)
}
