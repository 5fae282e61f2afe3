package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InviteCode represents the structure of an invite code document in MongoDB
type InviteCode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code      string             `bson:"code" json:"code" index:"unique"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	RequestID primitive.ObjectID `bson:"requestId" json:"requestId"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ApproveFoundersRequestRequest is the admin approval payload
type ApproveFoundersRequestRequest struct {
	RequestID string `json:"requestId"`
}

// ApproveFoundersRequestResponse is returned on a successful approval. Warning is
// populated when the invite code was issued but the request row could not be flipped
// to approved.
type ApproveFoundersRequestResponse struct {
	Success   bool      `json:"success"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	Warning   string    `json:"warning,omitempty"`
}
