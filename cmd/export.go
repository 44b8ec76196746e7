package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rlmedina/gotruss/internal/export"
	"github.com/rlmedina/gotruss/internal/report"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the design report as PDF, XLSX, or plain text",
	Long: `Parse a truss description file, build the design report, and write it
in the requested format.

Formats:
  pdf   A4 report with the link table and longest-member summary
  xlsx  single-sheet workbook with the same fields
  txt   the plain report text

Examples:
  gotruss export roof.truss --format pdf --output roof.pdf
  gotruss export roof.truss --format xlsx --output roof.xlsx
  gotruss export roof.truss --format txt --output roof.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf, xlsx, or txt")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path [required]")
	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) {
	m, err := loadTruss(args[0], false)
	if err != nil {
		fail(err)
	}
	rep := report.Build(m)

	out, err := os.Create(exportOutput)
	if err != nil {
		fail(err)
	}
	defer out.Close()

	switch strings.ToLower(exportFormat) {
	case "pdf":
		err = export.PDF(rep, m, out)
	case "xlsx":
		err = export.XLSX(rep, m, out)
	case "txt":
		_, err = out.WriteString(rep.Text)
	default:
		fail(fmt.Errorf("unknown format %q (want pdf, xlsx, or txt)", exportFormat))
	}
	if err != nil {
		fail(err)
	}

	fmt.Printf("Report written to %s\n", exportOutput)
}
