package cmd

import (
	"fmt"

	"github.com/rlmedina/gotruss/internal/diagram"
	"github.com/rlmedina/gotruss/internal/scene"
	"github.com/spf13/cobra"
)

var (
	drawOutput  string
	drawLengths bool
)

var drawCmd = &cobra.Command{
	Use:   "draw <file>",
	Short: "Sketch the truss in the terminal or as an image file",
	Long: `Parse a truss description file and sketch it: members as segments,
nodes as labelled markers. By default the sketch is printed to the
terminal as a character grid; with --output it is written as an image
file instead (format chosen by extension, e.g. .png or .svg).

Examples:
  gotruss draw roof.truss
  gotruss draw roof.truss --output roof.png
  gotruss draw roof.truss --lengths`,
	Args: cobra.ExactArgs(1),
	Run:  runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVarP(&drawOutput, "output", "o", "", "Write an image file instead of the terminal sketch")
	drawCmd.Flags().BoolVar(&drawLengths, "lengths", false, "Also chart member lengths in model order")
}

func runDraw(cmd *cobra.Command, args []string) {
	m, err := loadTruss(args[0], false)
	if err != nil {
		fail(err)
	}
	snap := scene.Build(m)

	if drawOutput != "" {
		if err := diagram.ExportImage(snap, drawOutput); err != nil {
			fail(err)
		}
		fmt.Printf("Sketch written to %s\n", drawOutput)
	} else {
		fmt.Print(diagram.DrawASCII(snap))
	}

	if drawLengths {
		if profile := diagram.LengthProfile(snap); profile != "" {
			fmt.Println()
			fmt.Println(profile)
		}
	}
}
