package cmd

import (
	"fmt"
	"os"

	"github.com/rlmedina/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "Planar Truss Description Tool",
	Long: `gotruss - Go Planar Truss Toolkit

A CLI tool for reading plain-text planar truss descriptions and working
with the derived member geometry.

This tool helps structural drafters:
  - Parse truss description files (title, material, nodes, links)
  - Derive member lengths and orientation angles
  - Produce the tabular design report and longest-member summary
  - Sketch the truss in the terminal or as an image file
  - Export the report as PDF, XLSX, or plain text`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotruss v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Planar Truss Toolkit                                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for reading plain-text planar truss descriptions")
		fmt.Println("  and working with the derived member geometry.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Comma-separated truss file parsing")
		fmt.Println("    • Member length and orientation calculation")
		fmt.Println("    • Design report with longest-member summary")
		fmt.Println("    • ASCII and image truss sketches")
		fmt.Println("    • PDF, XLSX, and plain-text report export")
		fmt.Println()
		fmt.Println("  Use 'gotruss --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
