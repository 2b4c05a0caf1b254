// camcopy: Backup Tesla dashcam clips from removable drives.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

// printBanner prints a colored ASCII art banner for camcopy
func printBanner() {
	banner := `

	 ██████╗ █████╗ ███╗   ███╗ ██████╗ ██████╗ ██████╗ ██╗   ██╗
	██╔════╝██╔══██╗████╗ ████║██╔════╝██╔═══██╗██╔══██╗╚██╗ ██╔╝
	██║     ███████║██╔████╔██║██║     ██║   ██║██████╔╝ ╚████╔╝
	██║     ██╔══██║██║╚██╔╝██║██║     ██║   ██║██╔═══╝   ╚██╔╝
	╚██████╗██║  ██║██║ ╚═╝ ██║╚██████╗╚██████╔╝██║        ██║
	 ╚═════╝╚═╝  ╚═╝╚═╝     ╚═╝ ╚═════╝ ╚═════╝ ╚═╝        ╚═╝

`
	color.New(color.FgRed, color.Bold).Println(banner)
}

// interactivePrompt prompts the user for the destination and run mode
func interactivePrompt() (string, bool, bool) {
	printBanner()

	prompt := promptui.Prompt{
		Label: "Destination directory",
		Validate: func(input string) error {
			info, err := os.Stat(input)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("not a valid directory")
			}
			return nil
		},
	}
	destination, err := prompt.Run()
	if err == promptui.ErrInterrupt {
		color.New(color.FgRed, color.Bold).Println("\nInterrupted during prompt. Exiting cleanly.")
		os.Exit(130)
	} else if err != nil {
		log.Fatalf("[FATAL] Destination prompt failed: %v", err)
	}

	modePrompt := promptui.Select{
		Label: "What should camcopy do?",
		Items: []string{"Copy clips to the destination", "List pending clips only"},
	}
	_, mode, err := modePrompt.Run()
	if err == promptui.ErrInterrupt {
		color.New(color.FgRed, color.Bold).Println("\nInterrupted during prompt. Exiting cleanly.")
		os.Exit(130)
	} else if err != nil {
		log.Fatalf("[FATAL] Mode prompt failed: %v", err)
	}
	listOnly := mode == "List pending clips only"

	verbosePrompt := promptui.Select{
		Label: "Verbose output?",
		Items: []string{"No", "Yes"},
	}
	_, verbose, err := verbosePrompt.Run()
	if err == promptui.ErrInterrupt {
		color.New(color.FgRed, color.Bold).Println("\nInterrupted during prompt. Exiting cleanly.")
		os.Exit(130)
	} else if err != nil {
		log.Fatalf("[FATAL] Verbose prompt failed: %v", err)
	}

	return destination, listOnly, verbose == "Yes"
}
