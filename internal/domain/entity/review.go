package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the moderation state of a review. Only approved, active
// reviews count toward a product's public rating.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// IsValid reports whether s is a known review status.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}

	return false
}

// Review is a customer's product review. At most one review exists per
// (user, product) pair, enforced by an existence check at creation.
type Review struct {
	ID           uuid.UUID     `json:"id"`
	ProductID    uuid.UUID     `json:"product_id"`
	UserID       uuid.UUID     `json:"user_id"`
	Rating       int           `json:"rating"` // whole number, 1-5
	Title        string        `json:"title"`
	Comment      string        `json:"comment"`
	Status       ReviewStatus  `json:"status"`
	IsActive     bool          `json:"is_active"`
	Replies      []ReviewReply `json:"replies"`
	HelpfulCount int           `json:"helpful_count"`
	NotHelpful   int           `json:"not_helpful_count"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ReviewReply is a threaded reply under a review.
type ReviewReply struct {
	ID        uuid.UUID `json:"id"`
	ReviewID  uuid.UUID `json:"review_id"`
	UserID    uuid.UUID `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteKind is a helpfulness vote on a review.
type VoteKind string

const (
	VoteHelpful    VoteKind = "helpful"
	VoteNotHelpful VoteKind = "not_helpful"
)

// IsValid reports whether v is a known vote kind.
func (v VoteKind) IsValid() bool {
	return v == VoteHelpful || v == VoteNotHelpful
}

// ReviewVote records one user's helpfulness vote. A user has at most one vote
// per review; voting again with the other kind switches the vote.
type ReviewVote struct {
	ReviewID  uuid.UUID `json:"review_id"`
	UserID    uuid.UUID `json:"user_id"`
	Vote      VoteKind  `json:"vote"`
	CreatedAt time.Time `json:"created_at"`
}
