package postgres

import (
	"context"

	"qna-service/internal/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	CreateQuestionVote(ctx context.Context, vote *models.QuestionVote) error
	CreateAnswerVote(ctx context.Context, vote *models.AnswerVote) error
	DeleteQuestionVotes(ctx context.Context, questionID uint) (int64, error)
	DeleteAnswerVotesByQuestionID(ctx context.Context, questionID uint) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// CreateQuestionVote appends a vote row for a question
func (r *voteRepository) CreateQuestionVote(ctx context.Context, vote *models.QuestionVote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

// CreateAnswerVote appends a vote row for an answer
func (r *voteRepository) CreateAnswerVote(ctx context.Context, vote *models.AnswerVote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepository) DeleteQuestionVotes(ctx context.Context, questionID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("question_id = ?", questionID).Delete(&models.QuestionVote{})
	return result.RowsAffected, result.Error
}

// DeleteAnswerVotesByQuestionID removes vote rows for every answer that
// belongs to the question, via a subquery on the answers table.
func (r *voteRepository) DeleteAnswerVotesByQuestionID(ctx context.Context, questionID uint) (int64, error) {
	subQuery := r.db.Model(&models.Answer{}).Select("id").Where("question_id = ?", questionID)
	result := r.db.WithContext(ctx).Where("answer_id IN (?)", subQuery).Delete(&models.AnswerVote{})
	return result.RowsAffected, result.Error
}
