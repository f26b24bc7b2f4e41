package usecase

import (
	"context"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput is the payload for a new review.
type CreateReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Title     string
	Comment   string
}

// ListReviewsInput filters and pages the public review listing.
type ListReviewsInput struct {
	ProductID uuid.UUID
	Rating    *int
	Sort      string
	Page      int
	Limit     int
}

// ReviewPage is one page of a product's reviews plus the current aggregate.
type ReviewPage struct {
	Reviews []*entity.Review     `json:"reviews"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
	Rating  entity.RatingSummary `json:"rating"`
}

// ReviewUsecase defines the review operations.
//
// A user may review a product at most once. Every create, update and
// moderation change recomputes the product's aggregate rating from approved,
// active reviews only.
type ReviewUsecase interface {
	// ListProductReviews returns a page of approved, active reviews.
	ListProductReviews(ctx context.Context, input ListReviewsInput) (*ReviewPage, error)

	// CreateReview creates the user's review of a product. A second review
	// for the same (user, product) pair fails with a validation error.
	CreateReview(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (*entity.Review, error)

	// AddReply appends a reply under a review.
	AddReply(ctx context.Context, userID, reviewID uuid.UUID, comment string) (*entity.Review, error)

	// Vote records or switches the user's helpfulness vote on a review.
	Vote(ctx context.Context, userID, reviewID uuid.UUID, vote entity.VoteKind) (*entity.Review, error)

	// SetStatus moderates a review (admin) and refreshes the product rating.
	SetStatus(ctx context.Context, reviewID uuid.UUID, status entity.ReviewStatus) (*entity.Review, error)
}
