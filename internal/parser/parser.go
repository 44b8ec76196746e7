// Package parser turns truss description text into a model.
//
// The format is line oriented. Blank lines and lines whose first non-space
// character is '#' are skipped; every other line is comma separated with a
// case-insensitive keyword in the first field:
//
//	title, 'Howe Roof Truss'
//	material, 450, 250, 200000
//	static_factor, 2.5
//	node, A, 0, 0
//	link, ab, A, B
//
// Nodes must precede the links that reference them for the links to
// resolve; there is no forward-reference pass. Unrecognized keywords are
// ignored. Single-quote characters are stripped from every field.
package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rlmedina/gotruss/internal/geometry"
	"github.com/rlmedina/gotruss/internal/truss"
)

// Option configures a parse call.
type Option func(*config)

type config struct {
	strict bool
}

// Strict makes a node re-definition at a different position a
// DuplicateNodeError instead of silently keeping the first definition.
func Strict() Option {
	return func(c *config) { c.strict = true }
}

// handler consumes one recognized record. fields are trimmed and
// quote-stripped; line and raw identify the input line for error reporting.
type handler func(line int, raw string, fields []string) error

type run struct {
	cfg   config
	model *truss.Model
}

// Parse builds a fresh model from pre-split input lines. Line retrieval is
// the caller's job; see ParseReader for the common case. A parse is
// all-or-nothing: on error no model is returned.
func Parse(lines []string, opts ...Option) (*truss.Model, error) {
	r := &run{model: truss.NewModel()}
	for _, opt := range opts {
		opt(&r.cfg)
	}

	handlers := map[string]handler{
		"title":         r.title,
		"material":      r.material,
		"static_factor": r.staticFactor,
		"node":          r.node,
		"link":          r.link,
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		for j := range fields {
			fields[j] = cleanField(fields[j])
		}
		h, ok := handlers[strings.ToLower(fields[0])]
		if !ok {
			continue
		}
		if err := h(i, raw, fields); err != nil {
			return nil, err
		}
	}
	return r.model, nil
}

// ParseReader splits r into lines and parses them.
func ParseReader(rd io.Reader, opts ...Option) (*truss.Model, error) {
	sc := bufio.NewScanner(rd)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Parse(lines, opts...)
}

// cleanField strips single-quote characters and surrounding space.
func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "'", ""))
}

func (r *run) title(line int, raw string, fields []string) error {
	if len(fields) < 2 {
		return &MalformedRecordError{Line: line, Text: raw, Reason: "title needs a value"}
	}
	r.model.Title = fields[1]
	return nil
}

func (r *run) material(line int, raw string, fields []string) error {
	if len(fields) < 4 {
		return &MalformedRecordError{Line: line, Text: raw, Reason: "material needs ultimate strength, yield strength, and modulus"}
	}
	uts, err := parseFloat(line, raw, fields, 1)
	if err != nil {
		return err
	}
	ys, err := parseFloat(line, raw, fields, 2)
	if err != nil {
		return err
	}
	e, err := parseFloat(line, raw, fields, 3)
	if err != nil {
		return err
	}
	// Replaced wholesale; a static_factor record fills the fourth field.
	sf := r.model.Material.StaticFactor
	r.model.Material = truss.Material{UTS: uts, YS: ys, E: e, StaticFactor: sf}
	return nil
}

func (r *run) staticFactor(line int, raw string, fields []string) error {
	if len(fields) < 2 {
		return &MalformedRecordError{Line: line, Text: raw, Reason: "static_factor needs a value"}
	}
	sf, err := parseFloat(line, raw, fields, 1)
	if err != nil {
		return err
	}
	r.model.Material.StaticFactor = sf
	return nil
}

func (r *run) node(line int, raw string, fields []string) error {
	if len(fields) < 4 {
		return &MalformedRecordError{Line: line, Text: raw, Reason: "node needs a name, x, and y"}
	}
	x, err := parseFloat(line, raw, fields, 2)
	if err != nil {
		return err
	}
	y, err := parseFloat(line, raw, fields, 3)
	if err != nil {
		return err
	}
	// Input y is negated to align with the drawing convention.
	n := &truss.Node{Name: fields[1], Position: geometry.New(x, -y, 0)}
	if r.cfg.strict {
		if prev := r.model.Node(n.Name); prev != nil && prev.Position != n.Position {
			return &DuplicateNodeError{Line: line, Name: n.Name}
		}
	}
	r.model.AddNode(n)
	return nil
}

func (r *run) link(line int, raw string, fields []string) error {
	if len(fields) < 4 {
		return &MalformedRecordError{Line: line, Text: raw, Reason: "link needs a name and two node names"}
	}
	r.model.AddLink(&truss.Link{Name: fields[1], Node1: fields[2], Node2: fields[3]})
	return nil
}

func parseFloat(line int, raw string, fields []string, idx int) (float64, error) {
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, &MalformedRecordError{
			Line:   line,
			Text:   raw,
			Reason: "field " + strconv.Itoa(idx) + " is not a number: " + strconv.Quote(fields[idx]),
		}
	}
	return v, nil
}
