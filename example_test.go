package gqlt_test

import (
	"fmt"

	"go.appointy.com/gqlt"
	"go.appointy.com/gqlt/starwars"
)

// exampleT reports failures to stdout so examples stay self-contained.
type exampleT struct{}

func (exampleT) Errorf(format string, args ...interface{}) { fmt.Printf(format+"\n", args...) }
func (exampleT) FailNow()                                  {}

func Example() {
	schema, err := starwars.NewSchema()
	if err != nil {
		fmt.Println(err)
		return
	}

	res := gqlt.Check(exampleT{}, schema, func(q *gqlt.Query) {
		q.Text(`{ hero { name friends { name } } }`)
	}).
		NoErrors().
		PathEquals("$.hero.name", "Luke Skywalker")

	fmt.Println(gqlt.ReturnAt[string](res, "$.hero.friends[0].name"))
	// Output: Leia Organa
}

func ExampleQuery_Var() {
	schema, err := starwars.NewSchema()
	if err != nil {
		fmt.Println(err)
		return
	}

	gqlt.Check(exampleT{}, schema, func(q *gqlt.Query) {
		q.Text(`query Q($id: ID!) { human(id: $id) { name } }`)
		q.Var("id", "1000")
	}).
		NoErrors().
		WithJSON(func(j *gqlt.JSON) {
			j.PathEquals("$.human.name", "Luke Skywalker")
			fmt.Println(j.Text())
		})
	// Output: {"human":{"name":"Luke Skywalker"}}
}
