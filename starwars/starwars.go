// Package starwars is a small in-memory schema used by the DSL's own tests
// and examples. Resolvers serve canned data; createReview mutates a
// per-schema review store.
package starwars

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

var episodeType = graphql.NewEnum(graphql.EnumConfig{
	Name: "Episode",
	Values: graphql.EnumValueConfigMap{
		"NEWHOPE": &graphql.EnumValueConfig{Value: "NEWHOPE"},
		"EMPIRE":  &graphql.EnumValueConfig{Value: "EMPIRE"},
		"JEDI":    &graphql.EnumValueConfig{Value: "JEDI"},
	},
})

type store struct {
	humans  map[string]map[string]interface{}
	reviews map[string][]interface{}
}

func newStore() *store {
	luke := map[string]interface{}{
		"id":     "1000",
		"name":   "Luke Skywalker",
		"height": 1.72,
	}
	leia := map[string]interface{}{
		"id":     "1003",
		"name":   "Leia Organa",
		"height": 1.50,
	}
	luke["friends"] = []interface{}{leia}
	leia["friends"] = []interface{}{luke}

	return &store{
		humans: map[string]map[string]interface{}{
			"1000": luke,
			"1003": leia,
		},
		reviews: map[string][]interface{}{},
	}
}

// NewSchema builds a fresh schema with its own review store, so test runs
// never observe each other's mutations.
func NewSchema() (graphql.Schema, error) {
	s := newStore()

	humanType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Human",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":   &graphql.Field{Type: graphql.String},
			"height": &graphql.Field{Type: graphql.Float},
		},
	})
	humanType.AddFieldConfig("friends", &graphql.Field{
		Type: graphql.NewList(humanType),
	})

	reviewType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"episode":    &graphql.Field{Type: episodeType},
			"stars":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"commentary": &graphql.Field{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hero": &graphql.Field{
				Type: humanType,
				Args: graphql.FieldConfigArgument{
					"episode": &graphql.ArgumentConfig{Type: episodeType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.humans["1000"], nil
				},
			},
			"human": &graphql.Field{
				Type: humanType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					human, ok := s.humans[id]
					if !ok {
						return nil, nil
					}
					return human, nil
				},
			},
			"reviews": &graphql.Field{
				Type: graphql.NewList(reviewType),
				Args: graphql.FieldConfigArgument{
					"episode": &graphql.ArgumentConfig{Type: graphql.NewNonNull(episodeType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					episode, _ := p.Args["episode"].(string)
					return s.reviews[episode], nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createReview": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"episode":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(episodeType)},
					"stars":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"commentary": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					episode, _ := p.Args["episode"].(string)
					review := map[string]interface{}{
						"id":         uuid.New().String(),
						"episode":    episode,
						"stars":      p.Args["stars"],
						"commentary": p.Args["commentary"],
					}
					s.reviews[episode] = append(s.reviews[episode], review)
					return review, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
