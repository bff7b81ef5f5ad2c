package gqlt

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql/gqlerrors"
)

// AssertionError reports an expected/actual mismatch: a root field or path
// value that differs from the expectation, or engine errors where none were
// expected. Msg is ready for test-runner reporting; Expected and Actual
// carry the compared values.
type AssertionError struct {
	Msg      string
	Expected interface{}
	Actual   interface{}
}

func (e *AssertionError) Error() string { return e.Msg }

// PathNotFoundError reports a JSONPath expression that matched nothing.
// Absent and present-but-different are different bugs, so this is a
// separate kind from AssertionError.
type PathNotFoundError struct {
	Path    string
	Payload string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("no results for path %s\n\npayload:\n%s", e.Path, e.Payload)
}

// PreconditionError reports structural misuse of the DSL: asserting a root
// field on a non-map payload, a missing query resource, a bad expected
// type. Programmer errors, not data-driven assertion outcomes.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

func errNoErrors(errs []gqlerrors.FormattedError) *AssertionError {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Message)
	}
	return &AssertionError{
		Msg:      fmt.Sprintf("expected no errors in result, got %d:\n\n%s", len(errs), quoteBlocks(msgs)),
		Expected: []gqlerrors.FormattedError{},
		Actual:   errs,
	}
}

// quoteBlocks renders each message as a "> "-prefixed block, blocks
// separated by a bare ">" line.
func quoteBlocks(msgs []string) string {
	blocks := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		lines := strings.Split(msg, "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n>\n")
}
