package gqlt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/davecgh/go-spew/spew"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
)

// JSON is the path sub-DSL over one serialized data payload. The payload is
// serialized exactly once per Result, explicit nulls preserved, and the
// parsed document is reused by every path query.
type JSON struct {
	res  *Result
	text string
	doc  interface{}
}

func newJSON(r *Result) *JSON {
	j := &JSON{res: r}
	data, err := json.Marshal(r.raw.Data)
	if err != nil {
		r.fail(&PreconditionError{Msg: fmt.Sprintf("data payload cannot be serialized: %v", err)})
		return j
	}
	j.text = string(data)
	if err := json.Unmarshal(data, &j.doc); err != nil {
		r.fail(&PreconditionError{Msg: fmt.Sprintf("serialized payload cannot be re-parsed: %v", err)})
	}
	return j
}

// Text returns the serialized payload, for string-level assertions on exact
// rendering, key order or explicit nulls included.
func (j *JSON) Text() string { return j.text }

// AsText invokes fn with the serialized payload.
func (j *JSON) AsText(fn func(text string)) *JSON {
	fn(j.text)
	return j
}

// OnPath evaluates path against the cached document and hands the match to
// fn. A path with no results is a not-found failure, a different kind than
// an equality mismatch.
func (j *JSON) OnPath(path string, fn func(*Match)) *JSON {
	value, err := j.get(path)
	if err != nil {
		j.res.fail(err)
		return j
	}
	fn(&Match{json: j, path: path, value: value})
	return j
}

// OnPathValue is OnPath returning fn's result, for pulling derived values
// out of the sub-scope.
func (j *JSON) OnPathValue(path string, fn func(*Match) interface{}) interface{} {
	var out interface{}
	j.OnPath(path, func(m *Match) {
		out = fn(m)
	})
	return out
}

// PathEquals is OnPath followed by EqualTo.
func (j *JSON) PathEquals(path string, expected interface{}) *JSON {
	return j.OnPath(path, func(m *Match) {
		m.EqualTo(expected)
	})
}

func (j *JSON) get(path string) (interface{}, error) {
	value, err := jsonpath.Get(path, j.doc)
	if err != nil {
		return nil, &PathNotFoundError{Path: path, Payload: j.text}
	}
	// A multi-match selector that matched nothing yields an empty set,
	// which is "no results", not an empty value. A plain key path that
	// resolves to a genuinely empty array stays a value.
	if hits, ok := value.([]interface{}); ok && len(hits) == 0 && multiMatch(path) {
		return nil, &PathNotFoundError{Path: path, Payload: j.text}
	}
	return value, nil
}

// multiMatch reports whether path can select several nodes at once:
// wildcards, filters, recursive descent or slice ranges. Single-node paths
// either resolve or error, so only these forms produce empty result sets.
func multiMatch(path string) bool {
	if strings.ContainsAny(path, "*?") || strings.Contains(path, "..") {
		return true
	}
	rest := path
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			return false
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return false
		}
		if strings.Contains(rest[:end], ":") {
			return true
		}
		rest = rest[end+1:]
	}
}

// Match scopes one extracted path value. It lives only for the duration of
// the OnPath callback that produced it.
type Match struct {
	json  *JSON
	path  string
	value interface{}
}

// Value returns the extracted value.
func (m *Match) Value() interface{} { return m.value }

// AndDo invokes fn on the extracted value and returns fn's result.
func (m *Match) AndDo(fn func(value interface{}) interface{}) interface{} {
	return fn(m.value)
}

// EqualTo asserts deep structural equality between the extracted value and
// expected. The expected side is normalized through one JSON round trip so
// Go literals compare against the document's own scalar forms; comparison
// stays type sensitive, so 42 and "42" still differ.
func (m *Match) EqualTo(expected interface{}) {
	want, err := normalize(expected)
	if err != nil {
		m.json.res.fail(&PreconditionError{Msg: fmt.Sprintf("expected value cannot be serialized: %v", err)})
		return
	}
	if !assert.ObjectsAreEqual(want, m.value) {
		m.json.res.fail(&AssertionError{
			Msg: fmt.Sprintf("value at %s mismatch (-got +want):\n%s\npayload:\n%s",
				m.path, pretty.Compare(m.value, want), spew.Sdump(m.json.doc)),
			Expected: want,
			Actual:   m.value,
		})
	}
}

func normalize(value interface{}) (interface{}, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
