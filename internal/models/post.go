package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostType identifies the kind of content a post carries
type PostType string

const (
	PostTypeText        PostType = "text"
	PostTypeImage       PostType = "image"
	PostTypeVideo       PostType = "video"
	PostTypeArticle     PostType = "article"
	PostTypePoll        PostType = "poll"
	PostTypeCelebration PostType = "celebration"
	PostTypeDocument    PostType = "document"
	PostTypeRepost      PostType = "repost"
)

// Valid reports whether t is one of the known post types
func (t PostType) Valid() bool {
	switch t {
	case PostTypeText, PostTypeImage, PostTypeVideo, PostTypeArticle,
		PostTypePoll, PostTypeCelebration, PostTypeDocument, PostTypeRepost:
		return true
	}
	return false
}

// Visibility controls who can see a post in the feed
type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityConnections Visibility = "connections"
	VisibilityPrivate     Visibility = "private"
)

// Valid reports whether v is one of the known visibility levels
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityConnections, VisibilityPrivate:
		return true
	}
	return false
}

// ReactionType is one of the six acknowledgements a user can leave on a post
type ReactionType string

const (
	ReactionLike       ReactionType = "like"
	ReactionCelebrate  ReactionType = "celebrate"
	ReactionSupport    ReactionType = "support"
	ReactionLove       ReactionType = "love"
	ReactionInsightful ReactionType = "insightful"
	ReactionFunny      ReactionType = "funny"
)

// ReactionTypes lists every reaction kind in a fixed order
var ReactionTypes = []ReactionType{
	ReactionLike, ReactionCelebrate, ReactionSupport,
	ReactionLove, ReactionInsightful, ReactionFunny,
}

// Valid reports whether t is one of the six reaction kinds
func (t ReactionType) Valid() bool {
	for _, rt := range ReactionTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Media describes an attached image, video or document
type Media struct {
	URL     string `json:"url,omitempty" bson:"url,omitempty"`
	Type    string `json:"type,omitempty" bson:"type,omitempty"`
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`
}

// Article describes a linked external article
type Article struct {
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
}

// PollOption is a single votable choice inside a poll post
type PollOption struct {
	ID    primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Text  string               `json:"text" bson:"text"`
	Votes []primitive.ObjectID `json:"votes" bson:"votes"`
}

// Poll holds the poll payload of a post with postType "poll"
type Poll struct {
	Question      string       `json:"question,omitempty" bson:"question,omitempty"`
	Options       []PollOption `json:"options,omitempty" bson:"options,omitempty"`
	EndsAt        *time.Time   `json:"ends_at,omitempty" bson:"ends_at,omitempty"`
	AllowMultiple bool         `json:"allow_multiple" bson:"allow_multiple"`
}

// Reply is a nested response to a comment
type Reply struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Text      string               `json:"text" bson:"text"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}

// Comment is an embedded comment on a post, addressable by its own id
type Comment struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Text      string               `json:"text" bson:"text"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Replies   []Reply              `json:"replies" bson:"replies"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}

// Reactions holds the six mutually exclusive reaction sets of a post
type Reactions struct {
	Like       []primitive.ObjectID `json:"like" bson:"like"`
	Celebrate  []primitive.ObjectID `json:"celebrate" bson:"celebrate"`
	Support    []primitive.ObjectID `json:"support" bson:"support"`
	Love       []primitive.ObjectID `json:"love" bson:"love"`
	Insightful []primitive.ObjectID `json:"insightful" bson:"insightful"`
	Funny      []primitive.ObjectID `json:"funny" bson:"funny"`
}

// set returns a pointer to the slice backing the given reaction kind
func (r *Reactions) set(t ReactionType) *[]primitive.ObjectID {
	switch t {
	case ReactionLike:
		return &r.Like
	case ReactionCelebrate:
		return &r.Celebrate
	case ReactionSupport:
		return &r.Support
	case ReactionLove:
		return &r.Love
	case ReactionInsightful:
		return &r.Insightful
	case ReactionFunny:
		return &r.Funny
	}
	return nil
}

// Has reports whether userID holds the given reaction
func (r *Reactions) Has(t ReactionType, userID primitive.ObjectID) bool {
	if s := r.set(t); s != nil {
		return containsID(*s, userID)
	}
	return false
}

// Total counts reactions across all six sets
func (r *Reactions) Total() int {
	return len(r.Like) + len(r.Celebrate) + len(r.Support) +
		len(r.Love) + len(r.Insightful) + len(r.Funny)
}

// EditRecord is a snapshot of post content before an edit
type EditRecord struct {
	Content  string    `json:"content" bson:"content"`
	EditedAt time.Time `json:"edited_at" bson:"edited_at"`
}

// Post is the feed aggregate: content plus embedded comments, reactions,
// poll state, shares and bookmarks
type Post struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	User          primitive.ObjectID   `json:"user" bson:"user"`
	PostType      PostType             `json:"post_type" bson:"post_type"`
	Content       string               `json:"content" bson:"content"`
	Media         Media                `json:"media,omitempty" bson:"media,omitempty"`
	Article       Article              `json:"article,omitempty" bson:"article,omitempty"`
	Poll          Poll                 `json:"poll,omitempty" bson:"poll,omitempty"`
	Visibility    Visibility           `json:"visibility" bson:"visibility"`
	Reactions     Reactions            `json:"reactions" bson:"reactions"`
	Likes         []primitive.ObjectID `json:"likes" bson:"likes"` // legacy mirror of reactions.like
	Comments      []Comment            `json:"comments" bson:"comments"`
	Shares        []primitive.ObjectID `json:"shares" bson:"shares"`
	OriginalPost  primitive.ObjectID   `json:"original_post,omitempty" bson:"original_post,omitempty"`
	RepostComment string               `json:"repost_comment,omitempty" bson:"repost_comment,omitempty"`
	Hashtags      []string             `json:"hashtags" bson:"hashtags"`
	Mentions      []primitive.ObjectID `json:"mentions" bson:"mentions"`
	Bookmarks     []primitive.ObjectID `json:"bookmarks" bson:"bookmarks"`
	IsEdited      bool                 `json:"is_edited" bson:"is_edited"`
	EditHistory   []EditRecord         `json:"edit_history,omitempty" bson:"edit_history,omitempty"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
}

// Poll voting failures
var (
	ErrNotPoll       = errors.New("not a poll post")
	ErrPollEnded     = errors.New("poll has ended")
	ErrInvalidOption = errors.New("invalid option")
)

// ApplyReaction clears userID from every reaction set, then adds it to the
// target set unless it was already there, so repeating the same reaction
// toggles it off. The legacy likes array is kept in sync for the "like" kind.
// Returns true when a reaction was added.
func (p *Post) ApplyReaction(userID primitive.ObjectID, t ReactionType) bool {
	wasInTarget := p.Reactions.Has(t, userID)
	for _, rt := range ReactionTypes {
		s := p.Reactions.set(rt)
		*s = removeID(*s, userID)
	}
	if wasInTarget {
		p.Likes = removeID(p.Likes, userID)
		return false
	}
	s := p.Reactions.set(t)
	*s = append(*s, userID)
	if t == ReactionLike && !containsID(p.Likes, userID) {
		p.Likes = append(p.Likes, userID)
	}
	return true
}

// ToggleLike flips the legacy like state, mirroring reactions.like.
// Returns true when the post ends up liked.
func (p *Post) ToggleLike(userID primitive.ObjectID) bool {
	if containsID(p.Likes, userID) {
		p.Likes = removeID(p.Likes, userID)
		p.Reactions.Like = removeID(p.Reactions.Like, userID)
		return false
	}
	p.Likes = append([]primitive.ObjectID{userID}, p.Likes...)
	p.Reactions.Like = append(p.Reactions.Like, userID)
	return true
}

// AddComment prepends a comment so the newest one comes first
func (p *Post) AddComment(userID primitive.ObjectID, text string) *Comment {
	c := Comment{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Text:      text,
		Likes:     []primitive.ObjectID{},
		Replies:   []Reply{},
		CreatedAt: time.Now(),
	}
	p.Comments = append([]Comment{c}, p.Comments...)
	return &p.Comments[0]
}

// Comment finds an embedded comment by id, or nil
func (p *Post) Comment(id primitive.ObjectID) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i]
		}
	}
	return nil
}

// DeleteComment removes a comment and its replies. Returns false when the
// comment does not exist.
func (p *Post) DeleteComment(id primitive.ObjectID) bool {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}

// AddReply appends a reply to the comment, oldest first
func (c *Comment) AddReply(userID primitive.ObjectID, text string) *Reply {
	c.Replies = append(c.Replies, Reply{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Text:      text,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
	})
	return &c.Replies[len(c.Replies)-1]
}

// ToggleLike flips userID's like on the comment. Returns true when liked.
func (c *Comment) ToggleLike(userID primitive.ObjectID) bool {
	if containsID(c.Likes, userID) {
		c.Likes = removeID(c.Likes, userID)
		return false
	}
	c.Likes = append(c.Likes, userID)
	return true
}

// ToggleBookmark flips userID's bookmark. Returns true when bookmarked.
func (p *Post) ToggleBookmark(userID primitive.ObjectID) bool {
	if containsID(p.Bookmarks, userID) {
		p.Bookmarks = removeID(p.Bookmarks, userID)
		return false
	}
	p.Bookmarks = append(p.Bookmarks, userID)
	return true
}

// RecordShare adds userID to the shares set; re-sharing is a no-op here
func (p *Post) RecordShare(userID primitive.ObjectID) {
	if !containsID(p.Shares, userID) {
		p.Shares = append(p.Shares, userID)
	}
}

// Vote applies a poll vote at the given instant. With allowMultiple off, the
// voter is first cleared from every option so a vote either toggles off or
// moves; with it on, only the target option toggles.
func (p *Post) Vote(optionIdx int, userID primitive.ObjectID, now time.Time) error {
	if p.PostType != PostTypePoll {
		return ErrNotPoll
	}
	if p.Poll.EndsAt != nil && p.Poll.EndsAt.Before(now) {
		return ErrPollEnded
	}
	if optionIdx < 0 || optionIdx >= len(p.Poll.Options) {
		return ErrInvalidOption
	}

	target := &p.Poll.Options[optionIdx]
	hadVote := containsID(target.Votes, userID)

	if !p.Poll.AllowMultiple {
		for i := range p.Poll.Options {
			p.Poll.Options[i].Votes = removeID(p.Poll.Options[i].Votes, userID)
		}
	} else if hadVote {
		target.Votes = removeID(target.Votes, userID)
	}
	if !hadVote {
		target.Votes = append(target.Votes, userID)
	}
	return nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// CreatePostRequest defines the request body for creating a post
type CreatePostRequest struct {
	Content    string  `json:"content" validate:"max=5000"`
	PostType   string  `json:"post_type" validate:"omitempty,oneof=text image video article poll celebration document repost"`
	Media      Media   `json:"media"`
	Article    Article `json:"article"`
	Poll       Poll    `json:"poll"`
	Visibility string  `json:"visibility" validate:"omitempty,oneof=public connections private"`
}

// EditPostRequest defines the request body for editing a post
type EditPostRequest struct {
	Content    string `json:"content" validate:"omitempty,max=5000"`
	Visibility string `json:"visibility" validate:"omitempty,oneof=public connections private"`
}

// ReactRequest defines the request body for reacting to a post
type ReactRequest struct {
	ReactionType string `json:"reaction_type" validate:"required"`
}

// CommentRequest defines the request body for comments and replies
type CommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// ShareRequest defines the request body for reposting
type ShareRequest struct {
	Comment    string `json:"comment" validate:"max=2000"`
	Visibility string `json:"visibility" validate:"omitempty,oneof=public connections private"`
}
