package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConnectionStatus is the lifecycle state of a connection edge
type ConnectionStatus string

const (
	ConnectionPending   ConnectionStatus = "pending"
	ConnectionAccepted  ConnectionStatus = "accepted"
	ConnectionRejected  ConnectionStatus = "rejected"
	ConnectionWithdrawn ConnectionStatus = "withdrawn"
	ConnectionBlocked   ConnectionStatus = "blocked"
)

// Valid reports whether s is one of the known connection statuses
func (s ConnectionStatus) Valid() bool {
	switch s {
	case ConnectionPending, ConnectionAccepted, ConnectionRejected,
		ConnectionWithdrawn, ConnectionBlocked:
		return true
	}
	return false
}

// Connection is a request/accept-gated edge between two users.
// A unique index on (requester, recipient) prevents duplicate edges.
type Connection struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Requester      primitive.ObjectID `json:"requester" bson:"requester"`
	Recipient      primitive.ObjectID `json:"recipient" bson:"recipient"`
	Status         ConnectionStatus   `json:"status" bson:"status"`
	Note           string             `json:"note" bson:"note"`
	ConnectionType string             `json:"connection_type" bson:"connection_type"`
	RequesterNote  string             `json:"requester_note" bson:"requester_note"`
	RecipientNote  string             `json:"recipient_note" bson:"recipient_note"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	AcceptedAt     *time.Time         `json:"accepted_at,omitempty" bson:"accepted_at,omitempty"`
}

// ConnectionRequestBody defines the request body for sending a connection request
type ConnectionRequestBody struct {
	Note           string `json:"note" validate:"max=300"`
	ConnectionType string `json:"connection_type" validate:"omitempty,oneof=colleague classmate friend other"`
}

// ConnectionNoteBody defines the request body for updating a private note
type ConnectionNoteBody struct {
	Note string `json:"note" validate:"max=1000"`
}

// Follow is a one-directional, ungated subscription edge.
// A unique index on (follower, following) prevents duplicates.
type Follow struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Follower  primitive.ObjectID `json:"follower" bson:"follower"`
	Following primitive.ObjectID `json:"following" bson:"following"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
