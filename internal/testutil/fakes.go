// Package testutil provides in-memory repository implementations for tests.
package testutil

import (
	"context"
	"strings"
	"sync"

	"qna-service/internal/models"

	"gorm.io/gorm"
)

// FakeQuestionRepository is an in-memory postgres.QuestionRepository.
// Set Err to make every call fail with that error.
type FakeQuestionRepository struct {
	mu        sync.Mutex
	nextID    uint
	Questions map[uint]models.Question
	Err       error
}

func NewFakeQuestionRepository() *FakeQuestionRepository {
	return &FakeQuestionRepository{Questions: make(map[uint]models.Question)}
}

func (f *FakeQuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var questions []models.Question
	for _, q := range f.Questions {
		questions = append(questions, q)
	}
	return questions, nil
}

func (f *FakeQuestionRepository) Search(ctx context.Context, title, category string) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var questions []models.Question
	for _, q := range f.Questions {
		if title != "" && !strings.Contains(strings.ToLower(q.Title), strings.ToLower(title)) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(q.Category), strings.ToLower(category)) {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (f *FakeQuestionRepository) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	q, ok := f.Questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (f *FakeQuestionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	_, ok := f.Questions[id]
	return ok, nil
}

func (f *FakeQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.nextID++
	question.ID = f.nextID
	f.Questions[question.ID] = *question
	return nil
}

func (f *FakeQuestionRepository) Update(ctx context.Context, question *models.Question) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	if _, ok := f.Questions[question.ID]; !ok {
		return 0, nil
	}
	f.Questions[question.ID] = *question
	return 1, nil
}

func (f *FakeQuestionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	if _, ok := f.Questions[id]; !ok {
		return 0, nil
	}
	delete(f.Questions, id)
	return 1, nil
}

// FakeAnswerRepository is an in-memory postgres.AnswerRepository
type FakeAnswerRepository struct {
	mu      sync.Mutex
	nextID  uint
	Answers map[uint]models.Answer
	Err     error
}

func NewFakeAnswerRepository() *FakeAnswerRepository {
	return &FakeAnswerRepository{Answers: make(map[uint]models.Answer)}
}

func (f *FakeAnswerRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]models.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var answers []models.Answer
	for _, a := range f.Answers {
		if a.QuestionID == questionID {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

func (f *FakeAnswerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	_, ok := f.Answers[id]
	return ok, nil
}

func (f *FakeAnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.nextID++
	answer.ID = f.nextID
	f.Answers[answer.ID] = *answer
	return nil
}

func (f *FakeAnswerRepository) DeleteByQuestionID(ctx context.Context, questionID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var deleted int64
	for id, a := range f.Answers {
		if a.QuestionID == questionID {
			delete(f.Answers, id)
			deleted++
		}
	}
	return deleted, nil
}

// FakeVoteRepository is an in-memory postgres.VoteRepository. It is safe for
// concurrent use so tests can issue simultaneous votes.
type FakeVoteRepository struct {
	mu            sync.Mutex
	nextID        uint
	QuestionVotes []models.QuestionVote
	AnswerVotes   []models.AnswerVote
	answers       *FakeAnswerRepository
	Err           error
}

func NewFakeVoteRepository(answers *FakeAnswerRepository) *FakeVoteRepository {
	return &FakeVoteRepository{answers: answers}
}

func (f *FakeVoteRepository) CreateQuestionVote(ctx context.Context, vote *models.QuestionVote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.nextID++
	vote.ID = f.nextID
	f.QuestionVotes = append(f.QuestionVotes, *vote)
	return nil
}

func (f *FakeVoteRepository) CreateAnswerVote(ctx context.Context, vote *models.AnswerVote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.nextID++
	vote.ID = f.nextID
	f.AnswerVotes = append(f.AnswerVotes, *vote)
	return nil
}

func (f *FakeVoteRepository) DeleteQuestionVotes(ctx context.Context, questionID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var kept []models.QuestionVote
	var deleted int64
	for _, v := range f.QuestionVotes {
		if v.QuestionID == questionID {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	f.QuestionVotes = kept
	return deleted, nil
}

func (f *FakeVoteRepository) DeleteAnswerVotesByQuestionID(ctx context.Context, questionID uint) (int64, error) {
	answerIDs := make(map[uint]bool)
	f.answers.mu.Lock()
	for id, a := range f.answers.Answers {
		if a.QuestionID == questionID {
			answerIDs[id] = true
		}
	}
	f.answers.mu.Unlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var kept []models.AnswerVote
	var deleted int64
	for _, v := range f.AnswerVotes {
		if answerIDs[v.AnswerID] {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	f.AnswerVotes = kept
	return deleted, nil
}

// QuestionVoteCount returns the number of stored votes for a question
func (f *FakeVoteRepository) QuestionVoteCount(questionID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, v := range f.QuestionVotes {
		if v.QuestionID == questionID {
			count++
		}
	}
	return count
}
