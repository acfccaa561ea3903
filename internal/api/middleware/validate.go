package middleware

import (
	"net/http"

	"qna-service/internal/models"

	"github.com/gin-gonic/gin"
)

// Context keys under which validated request bodies are stored for handlers
const (
	QuestionRequestKey = "questionRequest"
	AnswerRequestKey   = "answerRequest"
	VoteRequestKey     = "voteRequest"
)

// ValidateQuestionPayload rejects a create/update body unless title,
// description and category are all present and non-empty.
func ValidateQuestionPayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QuestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
			return
		}
		c.Set(QuestionRequestKey, req)
		c.Next()
	}
}

// ValidateAnswerContent rejects an answer body unless content is present and
// within the length cap.
func ValidateAnswerContent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Content is required."})
			return
		}
		if len(req.Content) > models.MaxAnswerContentLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Content must not exceed 300 characters."})
			return
		}
		c.Set(AnswerRequestKey, req)
		c.Next()
	}
}

// ValidateVote rejects a vote body unless vote is present and exactly 1 or -1
func ValidateVote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Vote is required."})
			return
		}
		if !req.Valid() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid vote value. Vote must be either 1 or -1."})
			return
		}
		c.Set(VoteRequestKey, req)
		c.Next()
	}
}
