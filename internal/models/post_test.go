package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestPost() *Post {
	return &Post{
		ID:   primitive.NewObjectID(),
		User: primitive.NewObjectID(),
	}
}

func TestApplyReaction(t *testing.T) {
	user := primitive.NewObjectID()

	t.Run("adds a reaction", func(t *testing.T) {
		post := newTestPost()
		added := post.ApplyReaction(user, ReactionCelebrate)
		assert.True(t, added)
		assert.Equal(t, []primitive.ObjectID{user}, post.Reactions.Celebrate)
	})

	t.Run("switching replaces the previous reaction", func(t *testing.T) {
		post := newTestPost()
		post.ApplyReaction(user, ReactionCelebrate)
		added := post.ApplyReaction(user, ReactionLove)
		assert.True(t, added)
		assert.Empty(t, post.Reactions.Celebrate)
		assert.Equal(t, []primitive.ObjectID{user}, post.Reactions.Love)
	})

	t.Run("repeating the same reaction removes it", func(t *testing.T) {
		post := newTestPost()
		post.ApplyReaction(user, ReactionFunny)
		added := post.ApplyReaction(user, ReactionFunny)
		assert.False(t, added)
		assert.Empty(t, post.Reactions.Funny)
	})

	t.Run("like reaction mirrors into legacy likes", func(t *testing.T) {
		post := newTestPost()
		post.ApplyReaction(user, ReactionLike)
		assert.Contains(t, post.Likes, user)

		post.ApplyReaction(user, ReactionLike)
		assert.NotContains(t, post.Likes, user)
	})

	t.Run("switching away from like keeps the legacy entry", func(t *testing.T) {
		// Legacy likes are only touched by the like kind itself or a
		// toggle-off; a switch to another kind leaves the entry behind.
		post := newTestPost()
		post.ApplyReaction(user, ReactionLike)
		post.ApplyReaction(user, ReactionInsightful)
		assert.Contains(t, post.Likes, user)
		assert.Empty(t, post.Reactions.Like)
		assert.Contains(t, post.Reactions.Insightful, user)
	})

	t.Run("other users are unaffected", func(t *testing.T) {
		other := primitive.NewObjectID()
		post := newTestPost()
		post.ApplyReaction(other, ReactionLove)
		post.ApplyReaction(user, ReactionLove)
		post.ApplyReaction(user, ReactionLove)
		assert.Equal(t, []primitive.ObjectID{other}, post.Reactions.Love)
	})
}

func TestToggleLike(t *testing.T) {
	user := primitive.NewObjectID()
	post := newTestPost()

	assert.True(t, post.ToggleLike(user))
	assert.Contains(t, post.Likes, user)
	assert.Contains(t, post.Reactions.Like, user)

	assert.False(t, post.ToggleLike(user))
	assert.NotContains(t, post.Likes, user)
	assert.NotContains(t, post.Reactions.Like, user)
}

func TestComments(t *testing.T) {
	user := primitive.NewObjectID()

	t.Run("new comments are prepended", func(t *testing.T) {
		post := newTestPost()
		post.AddComment(user, "first")
		post.AddComment(user, "second")

		require.Len(t, post.Comments, 2)
		assert.Equal(t, "second", post.Comments[0].Text)
		assert.Equal(t, "first", post.Comments[1].Text)
	})

	t.Run("replies are appended", func(t *testing.T) {
		post := newTestPost()
		comment := post.AddComment(user, "parent")
		comment.AddReply(user, "first reply")
		comment.AddReply(user, "second reply")

		require.Len(t, comment.Replies, 2)
		assert.Equal(t, "first reply", comment.Replies[0].Text)
		assert.Equal(t, "second reply", comment.Replies[1].Text)
	})

	t.Run("delete removes by id", func(t *testing.T) {
		post := newTestPost()
		keep := post.AddComment(user, "keep")
		drop := post.AddComment(user, "drop")
		// Snapshot the id: drop points into post.Comments' backing array,
		// which DeleteComment mutates in place.
		dropID := drop.ID

		assert.True(t, post.DeleteComment(dropID))
		require.Len(t, post.Comments, 1)
		assert.Equal(t, keep.ID, post.Comments[0].ID)

		assert.False(t, post.DeleteComment(dropID))
	})

	t.Run("comment like toggles", func(t *testing.T) {
		post := newTestPost()
		comment := post.AddComment(user, "hello")

		assert.True(t, comment.ToggleLike(user))
		assert.False(t, comment.ToggleLike(user))
		assert.Empty(t, comment.Likes)
	})

	t.Run("lookup by id", func(t *testing.T) {
		post := newTestPost()
		comment := post.AddComment(user, "hello")

		assert.Equal(t, comment.ID, post.Comment(comment.ID).ID)
		assert.Nil(t, post.Comment(primitive.NewObjectID()))
	})
}

func TestToggleBookmark(t *testing.T) {
	user := primitive.NewObjectID()
	post := newTestPost()

	assert.True(t, post.ToggleBookmark(user))
	assert.Contains(t, post.Bookmarks, user)
	assert.False(t, post.ToggleBookmark(user))
	assert.Empty(t, post.Bookmarks)
}

func TestRecordShare(t *testing.T) {
	user := primitive.NewObjectID()
	post := newTestPost()

	post.RecordShare(user)
	post.RecordShare(user)
	assert.Equal(t, []primitive.ObjectID{user}, post.Shares)
}

func TestVote(t *testing.T) {
	user := primitive.NewObjectID()
	now := time.Now()

	pollPost := func(allowMultiple bool, endsAt *time.Time) *Post {
		post := newTestPost()
		post.PostType = PostTypePoll
		post.Poll = Poll{
			Question: "Favorite language?",
			Options: []PollOption{
				{ID: primitive.NewObjectID(), Text: "Go"},
				{ID: primitive.NewObjectID(), Text: "Rust"},
			},
			EndsAt:        endsAt,
			AllowMultiple: allowMultiple,
		}
		return post
	}

	t.Run("rejects non-poll posts", func(t *testing.T) {
		post := newTestPost()
		post.PostType = PostTypeText
		assert.ErrorIs(t, post.Vote(0, user, now), ErrNotPoll)
	})

	t.Run("rejects ended polls", func(t *testing.T) {
		ended := now.Add(-time.Hour)
		post := pollPost(false, &ended)
		assert.ErrorIs(t, post.Vote(0, user, now), ErrPollEnded)
	})

	t.Run("rejects out-of-range options", func(t *testing.T) {
		post := pollPost(false, nil)
		assert.ErrorIs(t, post.Vote(-1, user, now), ErrInvalidOption)
		assert.ErrorIs(t, post.Vote(2, user, now), ErrInvalidOption)
	})

	t.Run("single choice moves the vote", func(t *testing.T) {
		post := pollPost(false, nil)
		require.NoError(t, post.Vote(0, user, now))
		require.NoError(t, post.Vote(1, user, now))

		assert.Empty(t, post.Poll.Options[0].Votes)
		assert.Equal(t, []primitive.ObjectID{user}, post.Poll.Options[1].Votes)
	})

	t.Run("single choice revote on same option toggles off", func(t *testing.T) {
		post := pollPost(false, nil)
		require.NoError(t, post.Vote(0, user, now))
		require.NoError(t, post.Vote(0, user, now))
		assert.Empty(t, post.Poll.Options[0].Votes)
	})

	t.Run("multiple choice toggles per option", func(t *testing.T) {
		post := pollPost(true, nil)
		require.NoError(t, post.Vote(0, user, now))
		require.NoError(t, post.Vote(1, user, now))

		assert.Equal(t, []primitive.ObjectID{user}, post.Poll.Options[0].Votes)
		assert.Equal(t, []primitive.ObjectID{user}, post.Poll.Options[1].Votes)

		require.NoError(t, post.Vote(0, user, now))
		assert.Empty(t, post.Poll.Options[0].Votes)
	})
}
