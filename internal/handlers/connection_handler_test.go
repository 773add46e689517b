package handlers

import (
	"testing"

	"github.com/careernest/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSuggestionScore(t *testing.T) {
	shared1 := primitive.NewObjectID()
	shared2 := primitive.NewObjectID()

	tests := []struct {
		name       string
		current    models.User
		candidate  models.User
		wantScore  int
		wantShared []string
		wantMutual int
	}{
		{
			name:       "nothing in common",
			current:    models.User{Skills: []string{"go"}},
			candidate:  models.User{Skills: []string{"rust"}},
			wantScore:  0,
			wantShared: []string{},
		},
		{
			name:       "shared skills are case-insensitive, 3 points each",
			current:    models.User{Skills: []string{"Go", "Docker"}},
			candidate:  models.User{Skills: []string{"go", "DOCKER", "rust"}},
			wantScore:  6,
			wantShared: []string{"go", "DOCKER"},
		},
		{
			name:       "candidate education containing the caller's is worth 5",
			current:    models.User{Education: "MIT"},
			candidate:  models.User{Education: "mit media lab"},
			wantScore:  5,
			wantShared: []string{},
		},
		{
			name:       "containment is one-directional",
			current:    models.User{Education: "mit media lab"},
			candidate:  models.User{Education: "MIT"},
			wantScore:  0,
			wantShared: []string{},
		},
		{
			name:       "empty education never matches",
			current:    models.User{Education: ""},
			candidate:  models.User{Education: ""},
			wantScore:  0,
			wantShared: []string{},
		},
		{
			name:       "mutual connections are worth 4 each",
			current:    models.User{Connections: []primitive.ObjectID{shared1, shared2, primitive.NewObjectID()}},
			candidate:  models.User{Connections: []primitive.ObjectID{shared2, shared1}},
			wantScore:  8,
			wantShared: []string{},
			wantMutual: 2,
		},
		{
			name: "signals add up",
			current: models.User{
				Skills:      []string{"go"},
				Education:   "stanford",
				Connections: []primitive.ObjectID{shared1},
			},
			candidate: models.User{
				Skills:      []string{"Go"},
				Education:   "Stanford University",
				Connections: []primitive.ObjectID{shared1},
			},
			wantScore:  12,
			wantShared: []string{"Go"},
			wantMutual: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, shared, mutual := suggestionScore(&tt.current, &tt.candidate)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantShared, shared)
			assert.Equal(t, tt.wantMutual, mutual)
		})
	}
}

func TestSuggestionExclude(t *testing.T) {
	me := primitive.NewObjectID()
	connected := primitive.NewObjectID()
	pendingOut := primitive.NewObjectID()
	pendingIn := primitive.NewObjectID()

	edges := []models.Connection{
		{Requester: me, Recipient: pendingOut, Status: models.ConnectionPending},
		{Requester: pendingIn, Recipient: me, Status: models.ConnectionPending},
		// accepted edge whose endpoint is already in the connections list
		{Requester: connected, Recipient: me, Status: models.ConnectionAccepted},
	}

	exclude := suggestionExclude(me, []primitive.ObjectID{connected}, edges)

	assert.ElementsMatch(t,
		[]primitive.ObjectID{me, connected, pendingOut, pendingIn}, exclude)

	t.Run("no edges still excludes self and connections", func(t *testing.T) {
		exclude := suggestionExclude(me, []primitive.ObjectID{connected}, nil)
		assert.ElementsMatch(t, []primitive.ObjectID{me, connected}, exclude)
	})
}

func TestIntersectIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	assert.Equal(t, []primitive.ObjectID{a, c},
		intersectIDs([]primitive.ObjectID{a, b, c}, []primitive.ObjectID{c, a}))
	assert.Nil(t, intersectIDs([]primitive.ObjectID{a}, []primitive.ObjectID{b}))
	assert.Nil(t, intersectIDs(nil, []primitive.ObjectID{a}))
}
