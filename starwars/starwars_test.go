package starwars_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.appointy.com/gqlt"
	"go.appointy.com/gqlt/starwars"
)

func TestHeroAndFriends(t *testing.T) {
	schema, err := starwars.NewSchema()
	require.NoError(t, err)

	gqlt.Check(t, schema, func(q *gqlt.Query) {
		q.Text(`{ hero { id name friends { name } } }`)
	}).
		NoErrors().
		PathEquals("$.hero.name", "Luke Skywalker").
		PathEquals("$.hero.friends[*].name", []string{"Leia Organa"})
}

func TestHumanLookup(t *testing.T) {
	schema, err := starwars.NewSchema()
	require.NoError(t, err)

	gqlt.Check(t, schema, func(q *gqlt.Query) {
		q.Text(`query Q($id: ID!) { human(id: $id) { name height } }`)
		q.Var("id", "1003")
	}).
		NoErrors().
		PathEquals("$.human.name", "Leia Organa").
		PathEquals("$.human.height", 1.50)
}

func TestUnknownHumanIsNull(t *testing.T) {
	schema, err := starwars.NewSchema()
	require.NoError(t, err)

	gqlt.Check(t, schema, func(q *gqlt.Query) {
		q.Text(`query Q($id: ID!) { human(id: $id) { name } }`)
		q.Var("id", "9999")
	}).
		NoErrors().
		PathEquals("$.human", nil)
}

func TestCreateReviewRoundTrip(t *testing.T) {
	schema, err := starwars.NewSchema()
	require.NoError(t, err)

	res := gqlt.Check(t, schema, func(q *gqlt.Query) {
		q.Text(`mutation M($stars: Int!, $commentary: String) {
			createReview(episode: JEDI, stars: $stars, commentary: $commentary) {
				id
				stars
				commentary
			}
		}`)
		q.Vars(map[string]interface{}{
			"stars":      5,
			"commentary": "a beautiful ending",
		})
	}).
		NoErrors().
		PathEquals("$.createReview.stars", 5).
		PathEquals("$.createReview.commentary", "a beautiful ending")

	id := gqlt.ReturnAt[string](res, "$.createReview.id")
	require.NotEmpty(t, id)

	// The stored review comes back on the query side of the same schema.
	gqlt.Check(t, schema, func(q *gqlt.Query) {
		q.Text(`{ reviews(episode: JEDI) { id stars } }`)
	}).
		NoErrors().
		PathEquals("$.reviews[*].id", []string{id})
}

func TestSchemasAreIsolated(t *testing.T) {
	first, err := starwars.NewSchema()
	require.NoError(t, err)
	second, err := starwars.NewSchema()
	require.NoError(t, err)

	gqlt.Check(t, first, func(q *gqlt.Query) {
		q.Text(`mutation { createReview(episode: EMPIRE, stars: 1) { id } }`)
	}).NoErrors()

	// The second schema's store never saw the mutation.
	res := gqlt.Check(t, second, func(q *gqlt.Query) {
		q.Text(`{ reviews(episode: EMPIRE) { id } }`)
	}).NoErrors()
	require.Equal(t, `{"reviews":null}`, res.AsJSON(func(j *gqlt.JSON) interface{} {
		return j.Text()
	}))
}
