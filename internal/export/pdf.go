// Package export renders the truss report as PDF and XLSX files.
package export

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/rlmedina/gotruss/internal/report"
	"github.com/rlmedina/gotruss/internal/truss"
)

// PDF writes an A4 rendition of the report to w: header, material block,
// link table, and the longest-member line.
func PDF(rep report.Report, m *truss.Model, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Truss Design Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Title: %s", m.Title))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Static Factor of Safety: %.2f", m.Material.StaticFactor))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Ultimate Strength: %.2f", m.Material.UTS))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Yield Strength: %.2f", m.Material.YS))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Modulus of Elasticity: %.2f", m.Material.E))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	for _, h := range []string{"Link", "Node 1", "Node 2", "Length", "Angle (rad)"} {
		pdf.CellFormat(34, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range m.Links() {
		length, angle := "-", "-"
		if l.Computed {
			length = fmt.Sprintf("%.2f", l.Length)
			angle = fmt.Sprintf("%.2f", l.AngleRad)
		}
		pdf.CellFormat(34, 7, l.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(34, 7, l.Node1, "1", 0, "", false, 0, "")
		pdf.CellFormat(34, 7, l.Node2, "1", 0, "", false, 0, "")
		pdf.CellFormat(34, 7, length, "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 7, angle, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if name, n1, n2, length := rep.LongestSummary(); name != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Longest member: %s (%s-%s), length %s", name, n1, n2, length))
	}

	return pdf.Output(w)
}
