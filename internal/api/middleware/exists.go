package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"qna-service/internal/services"

	"github.com/gin-gonic/gin"
)

// Context keys under which parsed path ids are stored for handlers
const (
	QuestionIDKey = "questionId"
	AnswerIDKey   = "answerId"
)

// ExistsMiddleware guards routes that reference an entity by path id
type ExistsMiddleware struct {
	questionService *services.QuestionService
	answerService   *services.AnswerService
}

func NewExistsMiddleware(questionService *services.QuestionService, answerService *services.AnswerService) *ExistsMiddleware {
	return &ExistsMiddleware{
		questionService: questionService,
		answerService:   answerService,
	}
}

// RequireQuestion aborts with 404 unless the questionId path parameter
// references an existing question. An unparsable id cannot reference
// anything, so it maps to 404 as well.
func (em *ExistsMiddleware) RequireQuestion() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("questionId"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}

		exists, err := em.questionService.QuestionExists(c.Request.Context(), uint(id))
		if err != nil {
			slog.Error("Failed to check question existence", "id", id, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Error checking question existence."})
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}

		c.Set(QuestionIDKey, uint(id))
		c.Next()
	}
}

// RequireAnswer aborts with 404 unless the answerId path parameter references
// an existing answer. The parent question is not consulted.
func (em *ExistsMiddleware) RequireAnswer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("answerId"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Answer not found."})
			return
		}

		exists, err := em.answerService.AnswerExists(c.Request.Context(), uint(id))
		if err != nil {
			slog.Error("Failed to check answer existence", "id", id, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Error checking answer existence."})
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Answer not found."})
			return
		}

		c.Set(AnswerIDKey, uint(id))
		c.Next()
	}
}
