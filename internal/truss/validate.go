package truss

import "fmt"

// Validation error codes.
const (
	CodeDuplicateNode     = "DUPLICATE_NODE"
	CodeUnresolvedLinkRef = "UNRESOLVED_LINK_REF"
)

// ValidationError describes a non-fatal data-quality finding in a model.
type ValidationError struct {
	Code    string
	Message string
	Node    string // offending node name, if any
	Link    string // offending link name, if any
}

func (e ValidationError) Error() string {
	context := ""
	if e.Node != "" {
		context = fmt.Sprintf(" (node: %s)", e.Node)
	}
	if e.Link != "" {
		context = fmt.Sprintf(" (link: %s)", e.Link)
	}
	return fmt.Sprintf("%s: %s%s", e.Code, e.Message, context)
}

// Validate reports advisory findings: node names that were redefined at a
// different position during parsing, and links whose endpoint names do not
// resolve. Neither condition stops parsing or geometry computation; strict
// callers can choose to treat a non-empty result as fatal.
func Validate(m *Model) []ValidationError {
	var errs []ValidationError

	for _, name := range m.conflicts {
		errs = append(errs, ValidationError{
			Code:    CodeDuplicateNode,
			Message: "node redefined at a different position; first definition kept",
			Node:    name,
		})
	}

	for _, l := range m.links {
		for _, name := range []string{l.Node1, l.Node2} {
			if !m.HasNode(name) {
				errs = append(errs, ValidationError{
					Code:    CodeUnresolvedLinkRef,
					Message: fmt.Sprintf("endpoint %q does not name a node", name),
					Link:    l.Name,
				})
			}
		}
	}

	return errs
}
