package parser

import "fmt"

// MalformedRecordError reports a recognized record with missing or
// unparseable fields. Line is the 0-based index into the input the parser
// was handed; Text is the raw line as it appeared there.
type MalformedRecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %s (%q)", e.Line, e.Reason, e.Text)
}

// DuplicateNodeError is returned in strict mode when a node record repeats
// an existing name at a different position. The lenient default keeps the
// first definition silently.
type DuplicateNodeError struct {
	Line int
	Name string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q redefined at a different position on line %d", e.Name, e.Line)
}
