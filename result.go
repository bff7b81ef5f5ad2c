package gqlt

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
)

// Result wraps one engine result for assertion chaining. It owns the lazily
// built JSON view of the data payload: the view is built at most once per
// Result and shared by every path operation, however the chain reaches it.
type Result struct {
	t    TestingT
	opts checkOptions
	raw  *graphql.Result

	json    *JSON
	failure error
}

// Raw returns the engine result untouched.
func (r *Result) Raw() *graphql.Result { return r.raw }

// Failure returns the most recently reported failure, or nil. Mostly useful
// with ContinueOnFailure, when the chain keeps running after a mismatch.
func (r *Result) Failure() error { return r.failure }

// NoErrors fails when the engine reported any errors, quoting each one in
// the failure message.
func (r *Result) NoErrors() *Result {
	if len(r.raw.Errors) > 0 {
		r.fail(errNoErrors(r.raw.Errors))
	}
	return r
}

// HasErrors fails when the engine reported none.
func (r *Result) HasErrors() *Result {
	if len(r.raw.Errors) == 0 {
		r.fail(&AssertionError{Msg: "expected errors in result, got none"})
	}
	return r
}

// RootField asserts that the data payload is a map containing key with a
// value deep-equal to expected. Comparison is type sensitive: int 42 and
// string "42" do not match. A payload that is not a map at all is a
// precondition failure, not a mismatch.
func (r *Result) RootField(key string, expected interface{}) *Result {
	data, ok := r.raw.Data.(map[string]interface{})
	if !ok {
		r.fail(&PreconditionError{Msg: fmt.Sprintf("root data is %T, not a map", r.raw.Data)})
		return r
	}
	actual, ok := data[key]
	if !ok {
		r.fail(&AssertionError{
			Msg:      fmt.Sprintf("missing root field %q", key),
			Expected: expected,
		})
		return r
	}
	if !assert.ObjectsAreEqual(expected, actual) {
		r.fail(&AssertionError{
			Msg:      fmt.Sprintf("root field %q mismatch (-got +want):\n%s", key, pretty.Compare(actual, expected)),
			Expected: expected,
			Actual:   actual,
		})
	}
	return r
}

// WithJSON hands the JSONPath sub-DSL to fn. Batch several path operations
// inside one block when asserting many paths; the serialized view is cached
// on the Result either way.
func (r *Result) WithJSON(fn func(*JSON)) *Result {
	fn(r.jsonView())
	return r
}

// AsJSON is WithJSON returning fn's value, for extracting derived values
// out of the nested scope.
func (r *Result) AsJSON(fn func(*JSON) interface{}) interface{} {
	return fn(r.jsonView())
}

// OnPath evaluates path against the serialized payload and hands the match
// to fn.
func (r *Result) OnPath(path string, fn func(*Match)) *Result {
	r.jsonView().OnPath(path, fn)
	return r
}

// PathEquals asserts that the value at path deep-equals expected.
func (r *Result) PathEquals(path string, expected interface{}) *Result {
	r.jsonView().PathEquals(path, expected)
	return r
}

// DoWithPath evaluates path, invokes fn on the extracted value and returns
// fn's result.
func (r *Result) DoWithPath(path string, fn func(value interface{}) interface{}) interface{} {
	var out interface{}
	r.jsonView().OnPath(path, func(m *Match) {
		out = m.AndDo(fn)
	})
	return out
}

func (r *Result) jsonView() *JSON {
	if r.json == nil {
		r.json = newJSON(r)
	}
	return r.json
}

func (r *Result) fail(err error) {
	r.failure = err
	failT(r.t, r.opts, err)
}

// ReturnAt returns the typed value at path, for pulling data out once the
// assertion chain is done. A path the payload does not contain is a
// not-found failure; a value of the wrong concrete type is a precondition
// failure.
func ReturnAt[T any](r *Result, path string) T {
	var zero T
	value, err := r.jsonView().get(path)
	if err != nil {
		r.fail(err)
		return zero
	}
	typed, ok := value.(T)
	if !ok {
		r.fail(&PreconditionError{Msg: fmt.Sprintf("value at %s is %T, not %T", path, value, zero)})
		return zero
	}
	return typed
}
