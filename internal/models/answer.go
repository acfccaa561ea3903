package models

// MaxAnswerContentLength caps answer content at the application boundary;
// the column itself is unbounded text.
const MaxAnswerContentLength = 300

// Answer is a reply to a question. QuestionID is checked against the
// questions table at creation time, not enforced by a constraint.
type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Content    string `gorm:"not null" json:"content"`
}

// TableName specifies the table name for Answer
func (Answer) TableName() string {
	return "answers"
}

// AnswerRequest defines the input for creating an answer
type AnswerRequest struct {
	Content string `json:"content" binding:"required"`
}
