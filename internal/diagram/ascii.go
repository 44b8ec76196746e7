package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/rlmedina/gotruss/internal/scene"
)

// Character grid dimensions for the sketch
const (
	gridWidth  = 60
	gridHeight = 20
)

// DrawASCII creates a character-grid sketch of the truss: members as dotted
// segments, nodes as filled markers with a coordinate legend. Coordinates in
// the legend are shown in the input convention (y up).
func DrawASCII(snap scene.Snapshot) string {
	var sb strings.Builder

	title := snap.Title
	if title == "" {
		title = "TRUSS SKETCH"
	}
	sb.WriteString(fmt.Sprintf("  %s\n", title))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(title)))))

	if len(snap.Members) == 0 {
		sb.WriteString("  (no drawable members)\n")
		return sb.String()
	}

	minX, maxX := snap.Nodes[0].X, snap.Nodes[0].X
	minY, maxY := snap.Nodes[0].Y, snap.Nodes[0].Y
	for _, n := range snap.Nodes {
		minX = math.Min(minX, n.X)
		maxX = math.Max(maxX, n.X)
		minY = math.Min(minY, n.Y)
		maxY = math.Max(maxY, n.Y)
	}
	spanX := maxX - minX
	if spanX == 0 {
		spanX = 1
	}
	spanY := maxY - minY
	if spanY == 0 {
		spanY = 1
	}

	// Drawing-frame y already points down, matching grid rows.
	col := func(x float64) int {
		return int((x-minX)/spanX*float64(gridWidth) + 0.5)
	}
	row := func(y float64) int {
		return int((y-minY)/spanY*float64(gridHeight) + 0.5)
	}

	grid := make([][]rune, gridHeight+1)
	for i := range grid {
		grid[i] = make([]rune, gridWidth+1)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for _, mbr := range snap.Members {
		c1, r1 := col(mbr.P1.X), row(mbr.P1.Y)
		c2, r2 := col(mbr.P2.X), row(mbr.P2.Y)
		steps := max(abs(c2-c1), abs(r2-r1))
		if steps == 0 {
			grid[r1][c1] = '·'
			continue
		}
		for s := 0; s <= steps; s++ {
			c := c1 + (c2-c1)*s/steps
			r := r1 + (r2-r1)*s/steps
			grid[r][c] = '·'
		}
	}

	for _, n := range snap.Nodes {
		grid[row(n.Y)][col(n.X)] = '●'
	}

	sb.WriteString("\n")
	for _, line := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for _, n := range snap.Nodes {
		sb.WriteString(fmt.Sprintf("  ● %s  (%.1f, %.1f)\n", n.Name, n.X, -n.Y))
	}

	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
