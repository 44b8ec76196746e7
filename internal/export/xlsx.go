package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rlmedina/gotruss/internal/report"
	"github.com/rlmedina/gotruss/internal/truss"
)

// XLSX writes a single-sheet workbook rendition of the report to w.
func XLSX(rep report.Report, m *truss.Model, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	set := func(cell string, value interface{}) {
		f.SetCellValue(sheet, cell, value)
	}

	set("A1", "Title")
	set("B1", m.Title)
	set("A2", "Static Factor of Safety")
	set("B2", m.Material.StaticFactor)
	set("A3", "Ultimate Strength")
	set("B3", m.Material.UTS)
	set("A4", "Yield Strength")
	set("B4", m.Material.YS)
	set("A5", "Modulus of Elasticity")
	set("B5", m.Material.E)

	const headerRow = 7
	for i, h := range []string{"Link", "Node 1", "Node 2", "Length", "Angle (rad)"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, h)
	}

	for i, l := range m.Links() {
		row := headerRow + 1 + i
		set(fmt.Sprintf("A%d", row), l.Name)
		set(fmt.Sprintf("B%d", row), l.Node1)
		set(fmt.Sprintf("C%d", row), l.Node2)
		if l.Computed {
			set(fmt.Sprintf("D%d", row), l.Length)
			set(fmt.Sprintf("E%d", row), l.AngleRad)
		} else {
			set(fmt.Sprintf("D%d", row), "-")
			set(fmt.Sprintf("E%d", row), "-")
		}
	}

	if name, n1, n2, length := rep.LongestSummary(); name != "" {
		row := headerRow + len(m.Links()) + 2
		set(fmt.Sprintf("A%d", row), "Longest member")
		set(fmt.Sprintf("B%d", row), name)
		set(fmt.Sprintf("C%d", row), fmt.Sprintf("%s-%s", n1, n2))
		set(fmt.Sprintf("D%d", row), length)
	}

	_, err := f.WriteTo(w)
	return err
}
