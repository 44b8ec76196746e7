package cmd

import (
	"fmt"

	"github.com/rlmedina/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotruss",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gotruss v%s\n", version.Version)
		fmt.Println("Planar Truss Description Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
