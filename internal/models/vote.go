package models

// QuestionVote is an append-only vote record for a question. Votes are never
// updated or aggregated by the service; a tally is a derived concern.
type QuestionVote struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`
	Vote       int  `gorm:"not null" json:"vote"`
}

// TableName specifies the table name for QuestionVote
func (QuestionVote) TableName() string {
	return "question_votes"
}

// AnswerVote is an append-only vote record for an answer
type AnswerVote struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	AnswerID uint `gorm:"not null;index" json:"answer_id"`
	Vote     int  `gorm:"not null" json:"vote"`
}

// TableName specifies the table name for AnswerVote
func (AnswerVote) TableName() string {
	return "answer_votes"
}

// VoteRequest defines the input for casting a vote. Vote is a pointer so a
// missing field and an explicit zero are both rejected.
type VoteRequest struct {
	Vote *int `json:"vote" binding:"required"`
}

// Valid reports whether the vote value is exactly 1 or -1
func (r VoteRequest) Valid() bool {
	return r.Vote != nil && (*r.Vote == 1 || *r.Vote == -1)
}
