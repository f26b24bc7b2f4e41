package repository

import (
	"context"
	"errors"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview is returned when a (user, product) pair already has a review.
	ErrDuplicateReview = errors.New("review already exists for this user and product")
)

// Review listing sort orders.
const (
	ReviewSortNewest  = "newest"
	ReviewSortOldest  = "oldest"
	ReviewSortHighest = "highest"
	ReviewSortLowest  = "lowest"
	ReviewSortHelpful = "helpful"
)

// ListReviewsQuery narrows and pages the public review listing. Only
// approved, active reviews are ever returned by ListByProduct.
type ListReviewsQuery struct {
	ProductID uuid.UUID
	Rating    *int
	Sort      string
	Page      int
	Limit     int
}

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a review with its replies.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserAndProduct retrieves the user's review of a product, if any.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error)

	// ListByProduct returns a page of approved, active reviews and the total
	// match count.
	ListByProduct(ctx context.Context, query ListReviewsQuery) ([]*entity.Review, int64, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review's rating, title and comment.
	Update(ctx context.Context, review *entity.Review) error

	// UpdateStatus changes the moderation status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error

	// AddReply appends a reply under a review.
	AddReply(ctx context.Context, reply *entity.ReviewReply) error

	// UpsertVote records or switches a user's helpfulness vote.
	UpsertVote(ctx context.Context, vote *entity.ReviewVote) error

	// CountVotes returns the current helpful / not-helpful tallies.
	CountVotes(ctx context.Context, reviewID uuid.UUID) (helpful int, notHelpful int, err error)

	// UpdateVoteCounts overwrites the denormalized tallies on the review row.
	UpdateVoteCounts(ctx context.Context, reviewID uuid.UUID, helpful, notHelpful int) error

	// AggregateRating computes the average and count over approved, active
	// reviews of a product. Returns (0, 0) when there are none.
	AggregateRating(ctx context.Context, productID uuid.UUID) (average float64, count int, err error)
}
