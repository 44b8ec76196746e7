package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rlmedina/gotruss/internal/scene"
)

// ExportImage writes an image of the truss to filename (format chosen by
// extension, e.g. .png or .svg): members as lines, nodes as labelled
// markers. The drawing frame is flipped back to y-up so the image matches
// the input convention.
func ExportImage(snap scene.Snapshot, filename string) error {
	if len(snap.Nodes) == 0 {
		return fmt.Errorf("nothing to draw: truss has no nodes")
	}

	p := plot.New()
	p.Title.Text = snap.Title
	if p.Title.Text == "" {
		p.Title.Text = "Truss"
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// Members first so node markers draw on top.
	for _, mbr := range snap.Members {
		line, err := plotter.NewLine(plotter.XYs{
			{X: mbr.P1.X, Y: -mbr.P1.Y},
			{X: mbr.P2.X, Y: -mbr.P2.Y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(3)
		line.LineStyle.Color = color.RGBA{R: 90, G: 90, B: 90, A: 255}
		p.Add(line)
	}

	pts := make(plotter.XYs, len(snap.Nodes))
	labels := make([]string, len(snap.Nodes))
	for i, n := range snap.Nodes {
		pts[i] = plotter.XY{X: n.X, Y: -n.Y}
		labels[i] = n.Name
	}

	nodes, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	nodes.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	nodes.GlyphStyle.Radius = vg.Points(4)
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(nodes)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(names)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
