package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func indexKeys(keys interface{}) []string {
	d, _ := keys.(bson.D)
	var out []string
	for _, e := range d {
		out = append(out, e.Key)
	}
	return out
}

func TestUniqueIndexes(t *testing.T) {
	defs := uniqueIndexes()

	want := map[string][][]string{
		"users":        {{"username"}, {"email"}},
		"applications": {{"user", "opportunity"}},
		"connections":  {{"requester", "recipient"}},
		"follows":      {{"follower", "following"}},
	}

	require.Len(t, defs, len(want))
	for collection, wantKeys := range want {
		indexes, ok := defs[collection]
		require.True(t, ok, collection)
		require.Len(t, indexes, len(wantKeys), collection)

		for i, model := range indexes {
			assert.Equal(t, wantKeys[i], indexKeys(model.Keys), collection)
			require.NotNil(t, model.Options, collection)
			require.NotNil(t, model.Options.Unique, collection)
			assert.True(t, *model.Options.Unique, collection)
		}
	}
}
