package postgres

import (
	"context"

	"qna-service/internal/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindAll(ctx context.Context) ([]models.Question, error)
	Search(ctx context.Context, title, category string) ([]models.Question, error)
	FindByID(ctx context.Context, id uint) (*models.Question, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, question *models.Question) error
	Update(ctx context.Context, question *models.Question) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).Find(&questions).Error
	return questions, err
}

// Search matches case-insensitively on partial title and/or category,
// AND-combined when both are given.
func (r *questionRepository) Search(ctx context.Context, title, category string) ([]models.Question, error) {
	query := r.db.WithContext(ctx)
	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}
	if category != "" {
		query = query.Where("category ILIKE ?", "%"+category+"%")
	}

	var questions []models.Question
	err := query.Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Question{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// Update writes all mutable columns in place and reports how many rows
// matched, so the caller can distinguish a missing question.
func (r *questionRepository) Update(ctx context.Context, question *models.Question) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Question{}).Where("id = ?", question.ID).Updates(map[string]interface{}{
		"title":       question.Title,
		"description": question.Description,
		"category":    question.Category,
	})
	return result.RowsAffected, result.Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Question{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
