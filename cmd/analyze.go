package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/rlmedina/gotruss/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeStrict  bool
	analyzeDegrees bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Parse a truss file and print the design report",
	Long: `Parse a truss description file, derive the length and orientation
angle of every member, and print the design report with the
longest-member summary.

The file format is line oriented and comma separated. Blank lines and
lines starting with '#' are ignored:

  # comment
  title, 'Howe Roof Truss'
  material, 450, 250, 200000
  static_factor, 2.5
  node, A, 0, 0
  node, B, 3, 4
  link, ab, A, B

Nodes must precede the links that reference them. A link naming an
unknown node is kept but gets no geometry; run 'gotruss check' to list
such problems.

Examples:
  gotruss analyze roof.truss

  # Fail on node names redefined at a different position
  gotruss analyze roof.truss --strict

  # Also show member angles in degrees
  gotruss analyze roof.truss --degrees`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeStrict, "strict", false, "Reject node re-definitions at a different position")
	analyzeCmd.Flags().BoolVar(&analyzeDegrees, "degrees", false, "Show an additional member table with angles in degrees")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	m, err := loadTruss(args[0], analyzeStrict)
	if err != nil {
		fail(err)
	}

	rep := report.Build(m)
	fmt.Print(rep.Text)

	if analyzeDegrees {
		fmt.Println()
		fmt.Println("MEMBER ANGLES (DEGREES):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, l := range m.Links() {
			if !l.Computed {
				fmt.Fprintf(w, "  %s:\t-\n", l.Name)
				continue
			}
			fmt.Fprintf(w, "  %s:\t%.2f°\n", l.Name, l.AngleRad*180/math.Pi)
		}
		w.Flush()
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LONGEST MEMBER")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	name, n1, n2, length := rep.LongestSummary()
	if name == "" {
		fmt.Println("  (no members with computed geometry)")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member:\t%s\n", name)
	fmt.Fprintf(w, "  Node 1:\t%s\n", n1)
	fmt.Fprintf(w, "  Node 2:\t%s\n", n2)
	fmt.Fprintf(w, "  Length:\t%s\n", length)
	w.Flush()
}
