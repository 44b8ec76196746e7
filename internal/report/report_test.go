package report

import (
	"strings"
	"testing"

	"github.com/rlmedina/gotruss/internal/geometry"
	"github.com/rlmedina/gotruss/internal/truss"
)

func sampleModel(t *testing.T) *truss.Model {
	t.Helper()
	m := truss.NewModel()
	m.Title = "Test"
	m.Material = truss.Material{UTS: 100, YS: 50, E: 29000, StaticFactor: 2}
	m.AddNode(&truss.Node{Name: "A", Position: geometry.New(0, 0, 0)})
	m.AddNode(&truss.Node{Name: "B", Position: geometry.New(3, -4, 0)})
	m.AddLink(&truss.Link{Name: "L1", Node1: "A", Node2: "B"})
	m.ComputeLinkGeometry()
	return m
}

func TestBuildText(t *testing.T) {
	rep := Build(sampleModel(t))

	want := "\tTruss Design Report\n" +
		"Title:  Test\n" +
		"Static Factor of Safety:  2.00\n" +
		"Ultimate Strength:  100.00\n" +
		"Yield Strength:  50.00\n" +
		"Modulus of Elasticity:  29000.00\n" +
		"_____________Link Summary________________\n" +
		"Link\t(1)\t(2)\tLength\tAngle\n" +
		"L1\tA\tB\t5.00\t0.93\n"

	if rep.Text != want {
		t.Errorf("Text =\n%q\nwant\n%q", rep.Text, want)
	}
}

func TestLongest(t *testing.T) {
	m := sampleModel(t)
	m.AddNode(&truss.Node{Name: "C", Position: geometry.New(10, 0, 0)})
	m.AddLink(&truss.Link{Name: "L2", Node1: "A", Node2: "C"})
	m.ComputeLinkGeometry()

	rep := Build(m)
	if rep.Longest == nil {
		t.Fatal("Longest is nil")
	}
	if rep.Longest.Name != "L2" {
		t.Errorf("Longest = %s, want L2", rep.Longest.Name)
	}

	name, n1, n2, length := rep.LongestSummary()
	if name != "L2" || n1 != "A" || n2 != "C" || length != "10.00" {
		t.Errorf("LongestSummary = %q %q %q %q", name, n1, n2, length)
	}
}

func TestLongestTieKeepsFirst(t *testing.T) {
	m := truss.NewModel()
	m.AddNode(&truss.Node{Name: "A", Position: geometry.New(0, 0, 0)})
	m.AddNode(&truss.Node{Name: "B", Position: geometry.New(5, 0, 0)})
	m.AddNode(&truss.Node{Name: "C", Position: geometry.New(0, -5, 0)})
	m.AddLink(&truss.Link{Name: "first", Node1: "A", Node2: "B"})
	m.AddLink(&truss.Link{Name: "second", Node1: "A", Node2: "C"})
	m.ComputeLinkGeometry()

	rep := Build(m)
	if rep.Longest == nil || rep.Longest.Name != "first" {
		t.Errorf("tie must keep the first maximum, got %+v", rep.Longest)
	}
}

func TestNoComputedLinks(t *testing.T) {
	m := truss.NewModel()
	m.Title = "Empty"
	rep := Build(m)

	if rep.Longest != nil {
		t.Errorf("Longest = %+v, want nil", rep.Longest)
	}
	name, n1, n2, length := rep.LongestSummary()
	if name != "" || n1 != "" || n2 != "" || length != "" {
		t.Errorf("LongestSummary = %q %q %q %q, want empties", name, n1, n2, length)
	}
}

func TestDanglingLinkRow(t *testing.T) {
	m := truss.NewModel()
	m.AddNode(&truss.Node{Name: "A", Position: geometry.New(0, 0, 0)})
	m.AddLink(&truss.Link{Name: "L1", Node1: "A", Node2: "ghost"})
	m.ComputeLinkGeometry()

	rep := Build(m)
	if rep.Longest != nil {
		t.Errorf("dangling link must not be selected, got %+v", rep.Longest)
	}
	if !strings.Contains(rep.Text, "L1\tA\tghost\t-\t-\n") {
		t.Errorf("dangling link row missing placeholders:\n%q", rep.Text)
	}
}
