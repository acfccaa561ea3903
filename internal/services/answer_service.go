package services

import (
	"context"
	"errors"

	"qna-service/internal/models"
	"qna-service/internal/repositories/postgres"
)

var ErrAnswerNotFound = errors.New("answer not found")

type AnswerService struct {
	answerRepo postgres.AnswerRepository
}

func NewAnswerService(answerRepo postgres.AnswerRepository) *AnswerService {
	return &AnswerService{answerRepo: answerRepo}
}

// ListAnswers returns every answer of a question; the question's existence is
// the caller's concern, an empty slice is a valid result.
func (s *AnswerService) ListAnswers(ctx context.Context, questionID uint) ([]models.Answer, error) {
	return s.answerRepo.FindByQuestionID(ctx, questionID)
}

func (s *AnswerService) AnswerExists(ctx context.Context, id uint) (bool, error) {
	return s.answerRepo.Exists(ctx, id)
}

func (s *AnswerService) CreateAnswer(ctx context.Context, questionID uint, req models.AnswerRequest) (*models.Answer, error) {
	answer := &models.Answer{
		QuestionID: questionID,
		Content:    req.Content,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// DeleteAnswers removes all answers of a question. Deleting zero rows is
// success, so the operation is idempotent.
func (s *AnswerService) DeleteAnswers(ctx context.Context, questionID uint) error {
	_, err := s.answerRepo.DeleteByQuestionID(ctx, questionID)
	return err
}
