package cmd

import (
	"fmt"
	"os"

	"github.com/rlmedina/gotruss/internal/truss"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a truss file and list data-quality findings",
	Long: `Parse a truss description file and report data-quality findings:

  DUPLICATE_NODE       a node name was redefined at a different position
                       (the first definition was kept)
  UNRESOLVED_LINK_REF  a link endpoint does not name any node
                       (the link gets no length or angle)

Findings are advisory during analysis; this command turns them into a
non-zero exit status for use in scripts.

Examples:
  gotruss check roof.truss`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	m, err := loadTruss(args[0], false)
	if err != nil {
		fail(err)
	}

	findings := truss.Validate(m)
	if len(findings) == 0 {
		fmt.Printf("%s: ok (%d nodes, %d links)\n", args[0], len(m.Nodes()), len(m.Links()))
		return
	}

	for _, f := range findings {
		fmt.Printf("  %v\n", f)
	}
	fmt.Printf("%s: %d finding(s)\n", args[0], len(findings))
	os.Exit(1)
}
