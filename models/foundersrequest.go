package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lifecycle states for a founders request. Approval is terminal.
const (
	FoundersRequestStatusPending  = "pending"
	FoundersRequestStatusApproved = "approved"
)

// FoundersRequest holds the structure for the founders_requests collection in MongoDB
type FoundersRequest struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName   string             `json:"fullName" bson:"fullName"`
	Email      string             `json:"email" bson:"email"`
	Phone      string             `json:"phone" bson:"phone"`
	Profession string             `json:"profession" bson:"profession"`
	Note       string             `json:"note,omitempty" bson:"note,omitempty"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateFoundersRequestRequest is the intake payload submitted by the landing page form
type CreateFoundersRequestRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Profession string `json:"profession"`
	Note       string `json:"note,omitempty"`
}

// CreateFoundersRequestResponse is returned on a successful intake
type CreateFoundersRequestResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
}

// FoundersRequestStatusResponse is returned by the status lookup endpoint
type FoundersRequestStatusResponse struct {
	Success    bool       `json:"success"`
	HasRequest bool       `json:"hasRequest"`
	Status     string     `json:"status,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// PaginatedFoundersRequestsResponse is returned by the admin review queue
type PaginatedFoundersRequestsResponse struct {
	Success  bool              `json:"success"`
	Requests []FoundersRequest `json:"requests"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
