// Package gqlt is a fluent DSL for integration-testing GraphQL resolvers.
//
// It executes a query against a caller-supplied graphql-go schema and wraps
// the engine result in a chainable matcher, with a JSONPath sub-DSL for
// poking at the response tree:
//
//	gqlt.Check(t, schema, func(q *gqlt.Query) {
//		q.Text(`query Q($echo: String) { echo(value: $echo) }`)
//		q.Var("echo", "response")
//	}).
//		NoErrors().
//		PathEquals("$.echo", "response")
//
// All parsing, validation and resolution is the engine's business; the DSL
// adds no validation of its own and reports failures through the test
// framework the way testify does.
package gqlt

import "github.com/graphql-go/graphql"

// TestingT is the subset of *testing.T the DSL reports failures through.
// It matches testify's require, so anything usable there is usable here.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

type tHelper interface {
	Helper()
}

type Option func(*checkOptions)

type checkOptions struct {
	ContinueOnFailure bool
}

// ContinueOnFailure makes failures report through Errorf without aborting
// the test, so the rest of the assertion chain still runs. Failures remain
// inspectable via Result.Failure.
func ContinueOnFailure() Option {
	return func(o *checkOptions) { o.ContinueOnFailure = true }
}

// Check builds one GraphQL request, executes it against schema exactly once
// and returns a matcher over the engine's result.
//
// The build block receives a fresh Query; nothing leaks between calls. The
// engine is invoked after the block returns, so every builder method may be
// called in any order.
func Check(t TestingT, schema graphql.Schema, build func(*Query), opts ...Option) *Result {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	o := checkOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Query{
		t:      t,
		opts:   o,
		schema: schema,
		vars:   map[string]interface{}{},
	}
	build(q)

	return &Result{t: t, opts: o, raw: q.run()}
}

func failT(t TestingT, opts checkOptions, err error) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	t.Errorf("%v", err)
	if !opts.ContinueOnFailure {
		t.FailNow()
	}
}
