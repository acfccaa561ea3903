package postgres

import (
	"context"

	"qna-service/internal/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByQuestionID(ctx context.Context, questionID uint) ([]models.Answer, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, answer *models.Answer) error
	DeleteByQuestionID(ctx context.Context, questionID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Answer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

// DeleteByQuestionID removes every answer of a question and reports the
// number of rows deleted; zero is not an error.
func (r *answerRepository) DeleteByQuestionID(ctx context.Context, questionID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("question_id = ?", questionID).Delete(&models.Answer{})
	return result.RowsAffected, result.Error
}
