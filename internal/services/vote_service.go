package services

import (
	"context"

	"qna-service/internal/models"
	"qna-service/internal/repositories/postgres"
)

type VoteService struct {
	voteRepo postgres.VoteRepository
}

func NewVoteService(voteRepo postgres.VoteRepository) *VoteService {
	return &VoteService{voteRepo: voteRepo}
}

// VoteOnQuestion appends an immutable vote row for a question
func (s *VoteService) VoteOnQuestion(ctx context.Context, questionID uint, vote int) error {
	return s.voteRepo.CreateQuestionVote(ctx, &models.QuestionVote{
		QuestionID: questionID,
		Vote:       vote,
	})
}

// VoteOnAnswer appends an immutable vote row for an answer
func (s *VoteService) VoteOnAnswer(ctx context.Context, answerID uint, vote int) error {
	return s.voteRepo.CreateAnswerVote(ctx, &models.AnswerVote{
		AnswerID: answerID,
		Vote:     vote,
	})
}
