package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType is the closed set of notification kinds.
// Every reaction kind emits NotificationPostLike; comment likes declare
// NotificationCommentLike but nothing emits it. Both quirks come from the
// stored data and are kept so old documents stay decodable.
type NotificationType string

const (
	NotificationConnectionRequest  NotificationType = "connection_request"
	NotificationConnectionAccepted NotificationType = "connection_accepted"
	NotificationPostLike           NotificationType = "post_like"
	NotificationPostComment        NotificationType = "post_comment"
	NotificationPostShare          NotificationType = "post_share"
	NotificationPostMention        NotificationType = "post_mention"
	NotificationCommentLike        NotificationType = "comment_like"
	NotificationCommentReply       NotificationType = "comment_reply"
	NotificationFollow             NotificationType = "follow"
	NotificationProfileView        NotificationType = "profile_view"
	NotificationPollEnded          NotificationType = "poll_ended"
	NotificationPostMilestone      NotificationType = "post_milestone"
	NotificationSystem             NotificationType = "system"
)

// Valid reports whether t is one of the known notification types
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationConnectionRequest, NotificationConnectionAccepted,
		NotificationPostLike, NotificationPostComment, NotificationPostShare,
		NotificationPostMention, NotificationCommentLike, NotificationCommentReply,
		NotificationFollow, NotificationProfileView, NotificationPollEnded,
		NotificationPostMilestone, NotificationSystem:
		return true
	}
	return false
}

// Notification is created only as a side effect of another write; after
// creation only the isRead flag ever changes.
type Notification struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Recipient         primitive.ObjectID `json:"recipient" bson:"recipient"`
	Sender            primitive.ObjectID `json:"sender,omitempty" bson:"sender,omitempty"`
	Type              NotificationType   `json:"type" bson:"type"`
	Message           string             `json:"message" bson:"message"`
	RelatedPost       primitive.ObjectID `json:"related_post,omitempty" bson:"related_post,omitempty"`
	RelatedConnection primitive.ObjectID `json:"related_connection,omitempty" bson:"related_connection,omitempty"`
	IsRead            bool               `json:"is_read" bson:"is_read"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}
