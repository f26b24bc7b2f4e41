package impl

import (
	"context"
	"testing"

	"skyelectro/config"
	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	mockRepo "skyelectro/internal/mocks/repository"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceMocks struct {
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	txManager   *mockRepo.MockTransactionManager
}

func newReviewService(t *testing.T, cfg *config.Config) (usecase.ReviewUsecase, reviewServiceMocks) {
	t.Helper()

	mocks := reviewServiceMocks{
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
	}
	service := NewReviewService(mocks.reviewRepo, mocks.productRepo, mocks.txManager, cfg, newTestLogger())

	return service, mocks
}

// expectReviewTransaction wires the transaction mock so the callback runs
// against a factory returning the given transactional repositories.
func expectReviewTransaction(ctx context.Context, mocks reviewServiceMocks, txReviewRepo *mockRepo.MockReviewRepository, txProductRepo *mockRepo.MockProductRepository) {
	factory := &mockRepo.MockRepositoryFactory{}
	factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
	if txProductRepo != nil {
		factory.EXPECT().NewProductRepository().Return(txProductRepo)
	}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestReviewService_CreateReview_AutoApproved(t *testing.T) {
	cfg := &config.Config{Storefront: &config.StorefrontConfig{AutoApproveReviews: true}}
	service, mocks := newReviewService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(1000, 0)

	mocks.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mocks.reviewRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(nil, repository.ErrReviewNotFound)

	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	txReviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)
	txReviewRepo.EXPECT().
		AggregateRating(ctx, product.ID).
		Return(4.5, 2, nil)

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txProductRepo.EXPECT().
		UpdateRating(ctx, product.ID, 4.5, 2).
		Return(nil)

	expectReviewTransaction(ctx, mocks, txReviewRepo, txProductRepo)

	review, err := service.CreateReview(ctx, userID, usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    5,
		Title:     "Excellent",
		Comment:   "Works exactly as described.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, review.Status)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, userID, review.UserID)
}

func TestReviewService_CreateReview_PendingSkipsRatingRefresh(t *testing.T) {
	service, mocks := newReviewService(t, &config.Config{})

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(1000, 0)

	mocks.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mocks.reviewRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(nil, repository.ErrReviewNotFound)

	// A pending review does not count towards the aggregate, so the
	// transaction only creates the row.
	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	txReviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)
	expectReviewTransaction(ctx, mocks, txReviewRepo, nil)

	review, err := service.CreateReview(ctx, userID, usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    4,
		Comment:   "Solid build quality.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusPending, review.Status)
}

func TestReviewService_CreateReview_AlreadyReviewed(t *testing.T) {
	service, mocks := newReviewService(t, &config.Config{})

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(1000, 0)

	mocks.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mocks.reviewRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(&entity.Review{ID: uuid.New(), ProductID: product.ID, UserID: userID}, nil)

	review, err := service.CreateReview(ctx, userID, usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    3,
		Comment:   "Again.",
	})
	assert.Nil(t, review)
	assert.Equal(t, domainerrors.ErrAlreadyReviewed, err)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	service, _ := newReviewService(t, &config.Config{})

	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		review, err := service.CreateReview(ctx, uuid.New(), usecase.CreateReviewInput{
			ProductID: uuid.New(),
			Rating:    rating,
			Comment:   "out of range",
		})
		assert.Nil(t, review)
		assert.Equal(t, domainerrors.ErrInvalidRating, err)
	}
}

func TestReviewService_CreateReview_InactiveProduct(t *testing.T) {
	service, mocks := newReviewService(t, &config.Config{})

	ctx := context.Background()
	product := newActiveProduct(1000, 0)
	product.IsActive = false

	mocks.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	review, err := service.CreateReview(ctx, uuid.New(), usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    4,
		Comment:   "gone",
	})
	assert.Nil(t, review)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestReviewService_Vote_RefreshesTallies(t *testing.T) {
	service, mocks := newReviewService(t, &config.Config{})

	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()

	mocks.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, ProductID: uuid.New(), Status: entity.ReviewStatusApproved}, nil)

	mocks.reviewRepo.EXPECT().
		UpsertVote(ctx, mock.AnythingOfType("*entity.ReviewVote")).
		Return(nil)

	mocks.reviewRepo.EXPECT().
		CountVotes(ctx, reviewID).
		Return(3, 1, nil)

	mocks.reviewRepo.EXPECT().
		UpdateVoteCounts(ctx, reviewID, 3, 1).
		Return(nil)

	review, err := service.Vote(ctx, userID, reviewID, entity.VoteHelpful)
	require.NoError(t, err)
	assert.Equal(t, 3, review.HelpfulCount)
	assert.Equal(t, 1, review.NotHelpful)
}

func TestReviewService_Vote_UnknownKind(t *testing.T) {
	service, _ := newReviewService(t, &config.Config{})

	review, err := service.Vote(context.Background(), uuid.New(), uuid.New(), entity.VoteKind("meh"))
	assert.Nil(t, review)
	assert.Error(t, err)
}

func TestReviewService_AddReply(t *testing.T) {
	service, mocks := newReviewService(t, &config.Config{})

	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()

	mocks.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, ProductID: uuid.New(), Status: entity.ReviewStatusApproved}, nil)

	mocks.reviewRepo.EXPECT().
		AddReply(ctx, mock.AnythingOfType("*entity.ReviewReply")).
		Return(nil)

	review, err := service.AddReply(ctx, userID, reviewID, "Thanks for the feedback!")
	require.NoError(t, err)
	require.Len(t, review.Replies, 1)
	assert.Equal(t, "Thanks for the feedback!", review.Replies[0].Comment)
	assert.Equal(t, userID, review.Replies[0].UserID)
}

func TestReviewService_SetStatus_RefreshesAggregate(t *testing.T) {
	service, mocks := newReviewService(t, &config.Config{})

	ctx := context.Background()
	reviewID := uuid.New()
	productID := uuid.New()

	mocks.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, ProductID: productID, Status: entity.ReviewStatusPending}, nil)

	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	txReviewRepo.EXPECT().
		UpdateStatus(ctx, reviewID, entity.ReviewStatusApproved).
		Return(nil)
	txReviewRepo.EXPECT().
		AggregateRating(ctx, productID).
		Return(4.0, 7, nil)

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txProductRepo.EXPECT().
		UpdateRating(ctx, productID, 4.0, 7).
		Return(nil)

	expectReviewTransaction(ctx, mocks, txReviewRepo, txProductRepo)

	review, err := service.SetStatus(ctx, reviewID, entity.ReviewStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, review.Status)
}

func TestReviewService_SetStatus_UnknownStatus(t *testing.T) {
	service, _ := newReviewService(t, &config.Config{})

	review, err := service.SetStatus(context.Background(), uuid.New(), entity.ReviewStatus("archived"))
	assert.Nil(t, review)
	assert.Error(t, err)
}

func TestReviewService_ListProductReviews_DefaultsToNewest(t *testing.T) {
	service, mocks := newReviewService(t, &config.Config{})

	ctx := context.Background()
	product := newActiveProduct(1000, 0)
	product.Rating = entity.RatingSummary{Average: 4.2, Count: 12}

	mocks.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	stored := []*entity.Review{
		{ID: uuid.New(), ProductID: product.ID, Rating: 5, Status: entity.ReviewStatusApproved},
	}
	mocks.reviewRepo.EXPECT().
		ListByProduct(ctx, repository.ListReviewsQuery{
			ProductID: product.ID,
			Sort:      repository.ReviewSortNewest,
			Page:      1,
			Limit:     20,
		}).
		Return(stored, int64(1), nil)

	page, err := service.ListProductReviews(ctx, usecase.ListReviewsInput{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, stored, page.Reviews)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 4.2, page.Rating.Average)
	assert.Equal(t, 12, page.Rating.Count)
}
