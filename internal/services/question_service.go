package services

import (
	"context"
	"errors"

	"qna-service/internal/models"
	"qna-service/internal/repositories/postgres"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionService struct {
	questionRepo postgres.QuestionRepository
	answerRepo   postgres.AnswerRepository
	voteRepo     postgres.VoteRepository
}

func NewQuestionService(
	questionRepo postgres.QuestionRepository,
	answerRepo postgres.AnswerRepository,
	voteRepo postgres.VoteRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		voteRepo:     voteRepo,
	}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.questionRepo.FindAll(ctx)
}

func (s *QuestionService) SearchQuestions(ctx context.Context, title, category string) ([]models.Question, error) {
	return s.questionRepo.Search(ctx, title, category)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	return question, err
}

func (s *QuestionService) QuestionExists(ctx context.Context, id uint) (bool, error) {
	return s.questionRepo.Exists(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req models.QuestionRequest) (*models.Question, error) {
	question := &models.Question{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint, req models.QuestionRequest) error {
	affected, err := s.questionRepo.Update(ctx, &models.Question{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// DeleteQuestion removes a question and cascades to its answers and votes
// with explicit prior deletes. Each statement is atomic on its own; a failure
// partway through surfaces as an error with no compensation.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := s.voteRepo.DeleteAnswerVotesByQuestionID(ctx, id); err != nil {
		return err
	}
	if _, err := s.voteRepo.DeleteQuestionVotes(ctx, id); err != nil {
		return err
	}
	if _, err := s.answerRepo.DeleteByQuestionID(ctx, id); err != nil {
		return err
	}

	affected, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
