package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "no hashtags",
			content: "plain text",
			want:    []string{},
		},
		{
			name:    "single hashtag",
			content: "shipping #golang today",
			want:    []string{"golang"},
		},
		{
			name:    "lowercased and deduplicated",
			content: "#Go and #GO and #go",
			want:    []string{"go"},
		},
		{
			name:    "multiple keep order",
			content: "#hiring a #backend engineer #hiring",
			want:    []string{"hiring", "backend"},
		},
		{
			name:    "punctuation terminates the tag",
			content: "love #go, hate #yaml!",
			want:    []string{"go", "yaml"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractHashtags(tt.content))
		})
	}
}

func TestExtractMentions(t *testing.T) {
	assert.Nil(t, extractMentions("nobody here"))
	assert.Equal(t, []string{"alice", "bob"}, extractMentions("cc @alice and @bob"))
	// Duplicates are kept; resolution dedupes by user
	assert.Equal(t, []string{"alice", "alice"}, extractMentions("@alice @alice"))
}
