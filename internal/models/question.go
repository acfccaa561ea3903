package models

// Question is a user-submitted question
type Question struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null" json:"category"`
}

// TableName specifies the table name for Question
func (Question) TableName() string {
	return "questions"
}

// QuestionRequest defines the input for creating or updating a question
type QuestionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}
