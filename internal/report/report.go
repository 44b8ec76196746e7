// Package report renders the textual truss summary.
package report

import (
	"fmt"
	"strings"

	"github.com/rlmedina/gotruss/internal/truss"
)

// Report is a finished summary: the display text and the longest computed
// link. Longest is nil when no link has geometry; callers must check before
// dereferencing it.
type Report struct {
	Text    string
	Longest *truss.Link
}

// Build produces the report for a model. It is a pure read: the model is
// not mutated and nothing is written anywhere.
//
// Numeric fields are fixed to two decimals and columns are tab separated.
// The longest link is the maximum length over computed links, scanning in
// model order; ties keep the first maximum. Links without computed geometry
// print '-' in the Length and Angle columns and never win the scan.
func Build(m *truss.Model) Report {
	var sb strings.Builder
	sb.WriteString("\tTruss Design Report\n")
	fmt.Fprintf(&sb, "Title:  %s\n", m.Title)
	fmt.Fprintf(&sb, "Static Factor of Safety:  %.2f\n", m.Material.StaticFactor)
	fmt.Fprintf(&sb, "Ultimate Strength:  %.2f\n", m.Material.UTS)
	fmt.Fprintf(&sb, "Yield Strength:  %.2f\n", m.Material.YS)
	fmt.Fprintf(&sb, "Modulus of Elasticity:  %.2f\n", m.Material.E)
	sb.WriteString("_____________Link Summary________________\n")
	sb.WriteString("Link\t(1)\t(2)\tLength\tAngle\n")

	var longest *truss.Link
	for _, l := range m.Links() {
		if !l.Computed {
			fmt.Fprintf(&sb, "%s\t%s\t%s\t-\t-\n", l.Name, l.Node1, l.Node2)
			continue
		}
		if longest == nil || l.Length > longest.Length {
			longest = l
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%.2f\t%.2f\n", l.Name, l.Node1, l.Node2, l.Length, l.AngleRad)
	}

	return Report{Text: sb.String(), Longest: longest}
}

// LongestSummary returns the four display strings for the longest link:
// its name, both endpoint names, and the length formatted to two decimals.
// All four are empty when no link has computed geometry.
func (r Report) LongestSummary() (name, node1, node2, length string) {
	if r.Longest == nil {
		return "", "", "", ""
	}
	l := r.Longest
	return l.Name, l.Node1, l.Node2, fmt.Sprintf("%.2f", l.Length)
}
