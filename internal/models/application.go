package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus tracks where an application sits in the pipeline
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "Applied"
	ApplicationReviewing   ApplicationStatus = "Reviewing"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationRejected    ApplicationStatus = "Rejected"
	ApplicationAccepted    ApplicationStatus = "Accepted"
)

// Valid reports whether s is one of the known application statuses
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationApplied, ApplicationReviewing, ApplicationShortlisted,
		ApplicationRejected, ApplicationAccepted:
		return true
	}
	return false
}

// Application is one user's application to one opportunity.
// A unique index on (user, opportunity) prevents duplicates.
type Application struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Opportunity primitive.ObjectID `json:"opportunity" bson:"opportunity"`
	Status      ApplicationStatus  `json:"status" bson:"status"`
	ResumeURL   string             `json:"resume_url" bson:"resume_url"`
	CoverLetter string             `json:"cover_letter" bson:"cover_letter"`
	AppliedAt   time.Time          `json:"applied_at" bson:"applied_at"`
}

// ApplyRequest defines the request body for applying to an opportunity
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url"`
}
