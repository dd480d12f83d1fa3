package main

import (
	"fmt"

	"github.com/IvanShishkin/dlsweep/internal/config"
	"github.com/spf13/cobra"
)

// printMainBanner prints the main banner
func printMainBanner() {
	fmt.Println()
	fmt.Printf("%s", colorOrange)
	fmt.Println("████▄  ██     ▄█████ ██     ██ ██████ ██████ █████▄")
	fmt.Println("██  ██ ██     ▀▀▀▄▄▄ ██ ▄█▄ ██ ██▄▄   ██▄▄   ██▄▄█▀")
	fmt.Println("████▀  ██████ █████▀  ▀██▀██▀  ██▄▄▄▄ ██▄▄▄▄ ██")
	fmt.Printf("%s", colorReset)
	fmt.Println()
	fmt.Printf("%sDownloads Organizer v%s%s\n", colorGray, version, colorReset)
	fmt.Println()
}

// printBanner prints the organize banner
func printBanner(root string, cfg *config.Config) {
	mode := "move"
	if cfg.DryRun {
		mode = "dry run"
	}
	printMainBanner()
	fmt.Printf("  %sRoot:%s      %s\n", colorGray, colorReset, root)
	fmt.Printf("  %sThreshold:%s %gh\n", colorGray, colorReset, cfg.AgeThresholdHours)
	fmt.Printf("  %sMode:%s      %s\n", colorGray, colorReset, mode)
	fmt.Println()
}

// helpCmd creates a detailed help command
func helpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show detailed help and documentation",
		Long:  `Display complete documentation including all commands, flags, and examples.`,
		Run: func(cmd *cobra.Command, args []string) {
			printMainBanner()

			fmt.Printf("%s%sABOUT%s\n\n", colorBold, colorOrange, colorReset)
			fmt.Printf("  dlsweep keeps a downloads folder tidy. Entries that have not been touched\n")
			fmt.Printf("  for a while are moved into category folders, and two read-only tools\n")
			fmt.Printf("  report disk usage and the latest downloads.\n\n")

			fmt.Printf("  %sKey features:%s\n", colorBold, colorReset)
			fmt.Printf("  • Age gate on modification time, nothing fresh is moved\n")
			fmt.Printf("  • Collision-safe moves with timestamp suffixes, never overwrites\n")
			fmt.Printf("  • Custom category tables from YAML\n")
			fmt.Printf("  • Console tables with clickable file links\n")
			fmt.Printf("  • Multiple output formats: JSON, Markdown, text\n\n")

			fmt.Printf("%s%sCOMMANDS%s\n\n", colorBold, colorOrange, colorReset)

			fmt.Printf("  %sorganize%s          Move stale top-level entries into category folders\n", colorBold, colorReset)
			fmt.Printf("  %sstats%s             Size, count and age summary, per subdirectory\n", colorBold, colorReset)
			fmt.Printf("  %srecent [limit]%s    Most recently downloaded files (default: 10)\n", colorBold, colorReset)
			fmt.Printf("  %scategories%s        Show the active category table\n", colorBold, colorReset)

			fmt.Printf("\n%s%sORGANIZE FLAGS%s\n\n", colorBold, colorOrange, colorReset)

			fmt.Printf("  %s--age-hours%s <n>    Minimum age before an entry moves (default: 24)\n", colorBold, colorReset)
			fmt.Printf("  %s--dry-run%s          Print the plan without moving anything\n", colorBold, colorReset)
			fmt.Printf("  %s--rules%s <file>     YAML category rules (default: built-in table)\n", colorBold, colorReset)

			fmt.Printf("\n%s%sREPORT FLAGS%s\n\n", colorBold, colorOrange, colorReset)

			fmt.Printf("  %s-r, --report%s <fmt> Report format: %stext%s, %sjson%s, %smd%s\n",
				colorBold, colorReset, colorCyan, colorReset, colorCyan, colorReset, colorCyan, colorReset)
			fmt.Printf("  %s-o, --output%s <file> Output file path\n", colorBold, colorReset)

			fmt.Printf("\n%s%sGLOBAL FLAGS%s\n\n", colorBold, colorOrange, colorReset)

			fmt.Printf("  %s--root%s <dir>       Downloads directory (default: ~/Downloads)\n", colorBold, colorReset)
			fmt.Printf("  %s--config%s <file>    Config file\n", colorBold, colorReset)
			fmt.Printf("  %s-v, --verbose%s      Enable verbose logging\n", colorBold, colorReset)
			fmt.Printf("  %s-h, --help%s         Show help for any command\n", colorBold, colorReset)
			fmt.Printf("  %s--version%s          Show version\n", colorBold, colorReset)

			fmt.Printf("\n%s%sENVIRONMENT%s\n\n", colorBold, colorOrange, colorReset)

			fmt.Printf("  Every config key can be set as %sDLSWEEP_<KEY>%s, e.g.\n", colorYellow, colorReset)
			fmt.Printf("  DLSWEEP_ROOT, DLSWEEP_AGE_THRESHOLD_HOURS, DLSWEEP_RECENT_LIMIT\n")

			fmt.Printf("\n%s%sEXAMPLES%s\n\n", colorBold, colorOrange, colorReset)

			fmt.Printf("  %s# Preview what would move%s\n", colorGray, colorReset)
			fmt.Printf("  dlsweep organize --dry-run\n\n")

			fmt.Printf("  %s# Move anything older than a week%s\n", colorGray, colorReset)
			fmt.Printf("  dlsweep organize --age-hours=168\n\n")

			fmt.Printf("  %s# Disk usage of another folder as Markdown%s\n", colorGray, colorReset)
			fmt.Printf("  dlsweep stats --root ~/Desktop -r md -o desktop.md\n\n")

			fmt.Printf("  %s# Latest 25 downloads%s\n", colorGray, colorReset)
			fmt.Printf("  dlsweep recent 25\n\n")
		},
	}
}
