package postgres

import (
	"context"

	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByID retrieves a review with its replies.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByUserAndProduct retrieves the user's review of a product, if any.
func (repo *reviewRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user and product")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByProduct returns a page of approved, active reviews and the total
// match count.
func (repo *reviewRepository) ListByProduct(ctx context.Context, query repository.ListReviewsQuery) ([]*entity.Review, int64, error) {
	db := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ? AND status = ? AND is_active = ?",
			query.ProductID, string(entity.ReviewStatusApproved), true)

	if query.Rating != nil {
		db = db.Where("rating = ?", *query.Rating)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := db.
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order(reviewSortClause(query.Sort)).
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

func reviewSortClause(sort string) string {
	switch sort {
	case repository.ReviewSortOldest:
		return "created_at ASC"
	case repository.ReviewSortHighest:
		return "rating DESC, created_at DESC"
	case repository.ReviewSortLowest:
		return "rating ASC, created_at DESC"
	case repository.ReviewSortHelpful:
		return "helpful_count DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update modifies an existing review's rating, title and comment.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":  review.Rating,
			"title":   review.Title,
			"comment": review.Comment,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// UpdateStatus changes the moderation status.
func (repo *reviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// AddReply appends a reply under a review.
func (repo *reviewRepository) AddReply(ctx context.Context, reply *entity.ReviewReply) error {
	replyM := model.ReviewReplyModel{
		ID:        reply.ID,
		ReviewID:  reply.ReviewID,
		UserID:    reply.UserID,
		Comment:   reply.Comment,
		CreatedAt: reply.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(&replyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to add review reply")
	}

	reply.ID = replyM.ID
	reply.CreatedAt = replyM.CreatedAt

	return nil
}

// UpsertVote records or switches a user's helpfulness vote.
func (repo *reviewRepository) UpsertVote(ctx context.Context, vote *entity.ReviewVote) error {
	voteM := model.ReviewVoteModel{
		ReviewID:  vote.ReviewID,
		UserID:    vote.UserID,
		Vote:      string(vote.Vote),
		CreatedAt: vote.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vote"}),
		}).
		Create(&voteM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert review vote")
	}

	return nil
}

// CountVotes returns the current helpful / not-helpful tallies.
func (repo *reviewRepository) CountVotes(ctx context.Context, reviewID uuid.UUID) (int, int, error) {
	type voteCount struct {
		Vote  string
		Count int
	}

	var counts []voteCount
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewVoteModel{}).
		Select("vote, COUNT(*) AS count").
		Where("review_id = ?", reviewID).
		Group("vote").
		Scan(&counts).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count review votes")
	}

	var helpful, notHelpful int
	for _, c := range counts {
		switch entity.VoteKind(c.Vote) {
		case entity.VoteHelpful:
			helpful = c.Count
		case entity.VoteNotHelpful:
			notHelpful = c.Count
		}
	}

	return helpful, notHelpful, nil
}

// UpdateVoteCounts overwrites the denormalized tallies on the review row.
func (repo *reviewRepository) UpdateVoteCounts(ctx context.Context, reviewID uuid.UUID, helpful, notHelpful int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", reviewID).
		Updates(map[string]any{
			"helpful_count":     helpful,
			"not_helpful_count": notHelpful,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review vote counts")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// AggregateRating computes the average and count over approved, active
// reviews of a product. Returns (0, 0) when there are none.
func (repo *reviewRepository) AggregateRating(ctx context.Context, productID uuid.UUID) (float64, int, error) {
	type aggregate struct {
		Average float64
		Count   int
	}

	var agg aggregate
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ? AND status = ? AND is_active = ?",
			productID, string(entity.ReviewStatusApproved), true).
		Scan(&agg).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to aggregate product rating")
	}

	return agg.Average, agg.Count, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	replies := make([]entity.ReviewReply, 0, len(data.Replies))
	for _, replyM := range data.Replies {
		replies = append(replies, entity.ReviewReply{
			ID:        replyM.ID,
			ReviewID:  replyM.ReviewID,
			UserID:    replyM.UserID,
			Comment:   replyM.Comment,
			CreatedAt: replyM.CreatedAt,
		})
	}

	return &entity.Review{
		ID:           data.ID,
		ProductID:    data.ProductID,
		UserID:       data.UserID,
		Rating:       data.Rating,
		Title:        data.Title,
		Comment:      data.Comment,
		Status:       entity.ReviewStatus(data.Status),
		IsActive:     data.IsActive,
		Replies:      replies,
		HelpfulCount: data.HelpfulCount,
		NotHelpful:   data.NotHelpful,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		UserID:       data.UserID,
		Rating:       data.Rating,
		Title:        data.Title,
		Comment:      data.Comment,
		Status:       string(data.Status),
		IsActive:     data.IsActive,
		HelpfulCount: data.HelpfulCount,
		NotHelpful:   data.NotHelpful,
	}
}
