package gqlt

import (
	"testing"

	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/kylelemons/godebug/pretty"
)

func TestQuoteBlocks(t *testing.T) {
	got := quoteBlocks([]string{"first error", "second error"})
	want := "> first error\n>\n> second error"
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("expected quoted blocks to match, but received %s", diff)
	}
}

func TestQuoteBlocksMultilineMessage(t *testing.T) {
	got := quoteBlocks([]string{"line one\nline two"})
	want := "> line one\n> line two"
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("expected quoted blocks to match, but received %s", diff)
	}
}

func TestErrNoErrorsFormat(t *testing.T) {
	err := errNoErrors([]gqlerrors.FormattedError{
		{Message: "boom"},
		{Message: "bang"},
	})

	want := "expected no errors in result, got 2:\n\n> boom\n>\n> bang"
	if diff := pretty.Compare(err.Error(), want); diff != "" {
		t.Errorf("expected message to match, but received %s", diff)
	}

	expected, ok := err.Expected.([]gqlerrors.FormattedError)
	if !ok || len(expected) != 0 {
		t.Errorf("expected an empty error list on Expected, but received %v", err.Expected)
	}
	if actual := err.Actual.([]gqlerrors.FormattedError); len(actual) != 2 {
		t.Errorf("expected both engine errors on Actual, but received %v", err.Actual)
	}
}
