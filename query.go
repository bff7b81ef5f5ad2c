package gqlt

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/graphql-go/graphql"
)

// Query accumulates a single GraphQL request: document text, variables, an
// optional execution context and an optional hook over the raw engine
// parameters. It is handed to the build block of Check, consumed by one
// engine call and must not be retained afterwards.
type Query struct {
	t    TestingT
	opts checkOptions

	schema    graphql.Schema
	text      string
	vars      map[string]interface{}
	ctx       context.Context
	root      map[string]interface{}
	operation string
	configure func(*graphql.Params)
}

// Text replaces the query document. The text is not validated here; syntax
// errors surface as engine errors on execution.
func (q *Query) Text(text string) *Query {
	q.text = text
	return q
}

// TextFromFS loads the query document from fsys, typically an embed.FS
// holding .graphql files next to the test. A resource that cannot be read
// is a precondition failure, not an engine error.
func (q *Query) TextFromFS(fsys fs.FS, name string) *Query {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		q.fail(&PreconditionError{Msg: fmt.Sprintf("query resource %q cannot be read: %v", name, err)})
		return q
	}
	q.text = string(data)
	return q
}

// Var binds one variable. Var(name, nil) binds an explicit null, which is
// not the same as never binding the variable: the null still reaches the
// engine and serializes as "name":null.
func (q *Query) Var(name string, value interface{}) *Query {
	q.vars[name] = value
	return q
}

// Vars merges m into the bound variables, overwriting existing names.
func (q *Query) Vars(m map[string]interface{}) *Query {
	for name, value := range m {
		q.vars[name] = value
	}
	return q
}

// Context sets the per-execution context forwarded verbatim to resolvers.
func (q *Query) Context(ctx context.Context) *Query {
	q.ctx = ctx
	return q
}

// Operation selects which operation of a multi-operation document to run.
func (q *Query) Operation(name string) *Query {
	q.operation = name
	return q
}

// Root seeds the engine's root object.
func (q *Query) Root(root map[string]interface{}) *Query {
	q.root = root
	return q
}

// Configure registers a hook over the raw engine parameters. It runs after
// every builder field has been applied, so it can override any of them.
func (q *Query) Configure(fn func(*graphql.Params)) *Query {
	q.configure = fn
	return q
}

func (q *Query) run() *graphql.Result {
	params := graphql.Params{
		Schema:        q.schema,
		RequestString: q.text,
	}
	// Engines distinguish "no variables" from an empty variable map, so an
	// untouched map stays off the request entirely.
	if len(q.vars) > 0 {
		params.VariableValues = q.vars
	}
	if q.ctx != nil {
		params.Context = q.ctx
	}
	if q.operation != "" {
		params.OperationName = q.operation
	}
	if q.root != nil {
		params.RootObject = q.root
	}
	if q.configure != nil {
		q.configure(&params)
	}

	return graphql.Do(params)
}

func (q *Query) fail(err error) {
	failT(q.t, q.opts, err)
}
