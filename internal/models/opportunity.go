package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OpportunityType classifies a listing
type OpportunityType string

const (
	OpportunityHackathon   OpportunityType = "Hackathon"
	OpportunityJob         OpportunityType = "Job"
	OpportunityInternship  OpportunityType = "Internship"
	OpportunityCompetition OpportunityType = "Competition"
)

// Valid reports whether t is one of the known opportunity types
func (t OpportunityType) Valid() bool {
	switch t {
	case OpportunityHackathon, OpportunityJob, OpportunityInternship, OpportunityCompetition:
		return true
	}
	return false
}

// Opportunity is a job/internship/hackathon/competition listing
type Opportunity struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Company     string             `json:"company" bson:"company"`
	Type        OpportunityType    `json:"type" bson:"type"`
	Description string             `json:"description" bson:"description"`
	Deadline    time.Time          `json:"deadline" bson:"deadline"`
	Reward      string             `json:"reward,omitempty" bson:"reward,omitempty"`
	Logo        string             `json:"logo,omitempty" bson:"logo,omitempty"`
	PostedAt    time.Time          `json:"posted_at" bson:"posted_at"`
}

// CreateOpportunityRequest defines the request body for creating a listing
type CreateOpportunityRequest struct {
	Title       string    `json:"title" validate:"required"`
	Company     string    `json:"company" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=Hackathon Job Internship Competition"`
	Description string    `json:"description" validate:"required"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	Reward      string    `json:"reward"`
	Logo        string    `json:"logo"`
}
