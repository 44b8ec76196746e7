package cmd

import (
	"fmt"
	"os"

	"github.com/rlmedina/gotruss/internal/parser"
	"github.com/rlmedina/gotruss/internal/truss"
)

// loadTruss parses a truss description file and derives member geometry.
func loadTruss(path string, strict bool) (*truss.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opts []parser.Option
	if strict {
		opts = append(opts, parser.Strict())
	}
	m, err := parser.ParseReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.ComputeLinkGeometry()
	return m, nil
}

// fail prints an error and exits; used by commands after argument parsing.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
