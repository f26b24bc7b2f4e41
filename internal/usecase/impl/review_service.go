package impl

import (
	"context"
	"log/slog"
	"time"

	"skyelectro/config"
	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
	cfg         *config.Config
	logger      *slog.Logger
}

// NewReviewService creates a new review service instance.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		txManager:   txManager,
		cfg:         cfg,
		logger:      logger,
	}
}

// ListProductReviews returns a page of the product's approved, active reviews
// together with the denormalized rating summary.
func (s *reviewService) ListProductReviews(ctx context.Context, input usecase.ListReviewsInput) (*usecase.ReviewPage, error) {
	product, err := s.findActiveProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePage(input.Page, input.Limit)
	sort := input.Sort
	if sort == "" {
		sort = repository.ReviewSortNewest
	}

	reviews, total, err := s.reviewRepo.ListByProduct(ctx, repository.ListReviewsQuery{
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Sort:      sort,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewPage{
		Reviews: reviews,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Rating:  product.Rating,
	}, nil
}

// CreateReview creates the user's single review of a product and refreshes
// the product's aggregate rating when the review counts immediately.
func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	if _, err := s.findActiveProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	_, err := s.reviewRepo.FindByUserAndProduct(ctx, userID, input.ProductID)
	if err == nil {
		return nil, domainerrors.ErrAlreadyReviewed
	}
	if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to find review by user and product")
	}

	status := entity.ReviewStatusPending
	if s.cfg.Storefront != nil && s.cfg.Storefront.AutoApproveReviews {
		status = entity.ReviewStatusApproved
	}

	now := time.Now()
	review := &entity.Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Title:     input.Title,
		Comment:   input.Comment,
		Status:    status,
		IsActive:  true,
		Replies:   []entity.ReviewReply{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txReviewRepo := factory.NewReviewRepository()
		if err := txReviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrAlreadyReviewed
			}

			return errors.Wrap(err, "failed to create review")
		}

		if review.Status == entity.ReviewStatusApproved {
			return refreshProductRating(ctx, factory, review.ProductID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// AddReply appends a reply under a review.
func (s *reviewService) AddReply(ctx context.Context, userID, reviewID uuid.UUID, comment string) (*entity.Review, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	reply := &entity.ReviewReply{
		ID:        uuid.New(),
		ReviewID:  review.ID,
		UserID:    userID,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.AddReply(ctx, reply); err != nil {
		return nil, errors.Wrap(err, "failed to add review reply")
	}

	review.Replies = append(review.Replies, *reply)

	return review, nil
}

// Vote records or switches the user's helpfulness vote, then refreshes the
// denormalized tallies on the review row.
func (s *reviewService) Vote(ctx context.Context, userID, reviewID uuid.UUID, vote entity.VoteKind) (*entity.Review, error) {
	if !vote.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vote must be helpful or not_helpful")
	}

	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.UpsertVote(ctx, &entity.ReviewVote{
		ReviewID:  review.ID,
		UserID:    userID,
		Vote:      vote,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to record review vote")
	}

	helpful, notHelpful, err := s.reviewRepo.CountVotes(ctx, review.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count review votes")
	}
	if err := s.reviewRepo.UpdateVoteCounts(ctx, review.ID, helpful, notHelpful); err != nil {
		return nil, errors.Wrap(err, "failed to update review vote counts")
	}

	review.HelpfulCount = helpful
	review.NotHelpful = notHelpful

	return review, nil
}

// SetStatus moderates a review and refreshes the product's aggregate rating,
// since approval and rejection both change what the aggregate covers.
func (s *reviewService) SetStatus(ctx context.Context, reviewID uuid.UUID, status entity.ReviewStatus) (*entity.Review, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown review status")
	}

	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txReviewRepo := factory.NewReviewRepository()
		if err := txReviewRepo.UpdateStatus(ctx, review.ID, status); err != nil {
			return errors.Wrap(err, "failed to update review status")
		}

		return refreshProductRating(ctx, factory, review.ProductID)
	})
	if err != nil {
		return nil, err
	}

	review.Status = status

	return review, nil
}

// refreshProductRating recomputes the product aggregate from approved, active
// reviews inside the caller's transaction.
func refreshProductRating(ctx context.Context, factory repository.RepositoryFactory, productID uuid.UUID) error {
	average, count, err := factory.NewReviewRepository().AggregateRating(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to aggregate product rating")
	}
	if err := factory.NewProductRepository().UpdateRating(ctx, productID, average, count); err != nil {
		return errors.Wrap(err, "failed to update product rating")
	}

	return nil
}

func (s *reviewService) findActiveProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (s *reviewService) findReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
