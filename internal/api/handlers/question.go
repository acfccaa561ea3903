package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"qna-service/internal/api/middleware"
	"qna-service/internal/models"
	"qna-service/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	answerService   *services.AnswerService
	voteService     *services.VoteService
}

func NewQuestionHandler(
	questionService *services.QuestionService,
	answerService *services.AnswerService,
	voteService *services.VoteService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		answerService:   answerService,
		voteService:     voteService,
	}
}

// GetAllQuestions godoc
// @Summary Get all questions
// @Description Retrieve a list of all questions
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{} "List of questions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /questions [get]
func (h *QuestionHandler) GetAllQuestions(c *gin.Context) {
	questions, err := h.questionService.ListQuestions(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list questions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch questions."})
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, gin.H{"data": questions})
}

// CreateQuestion godoc
// @Summary Create a new question
// @Description Create a new question with title, description, and category
// @Tags questions
// @Accept json
// @Produce json
// @Param request body models.QuestionRequest true "Question data"
// @Success 201 {object} map[string]string "Question created"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	req := c.MustGet(middleware.QuestionRequestKey).(models.QuestionRequest)

	if _, err := h.questionService.CreateQuestion(c.Request.Context(), req); err != nil {
		slog.Error("Failed to create question", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to create question."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Question created successfully."})
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Search questions by partial title and/or category, case-insensitive
// @Tags questions
// @Produce json
// @Param title query string false "Title to search for"
// @Param category query string false "Category to search for"
// @Success 200 {object} map[string]interface{} "Matching questions"
// @Failure 400 {object} map[string]string "Invalid search parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/search [get]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	title := c.Query("title")
	category := c.Query("category")

	if title == "" && category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid search parameters."})
		return
	}

	questions, err := h.questionService.SearchQuestions(c.Request.Context(), title, category)
	if err != nil {
		slog.Error("Failed to search questions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch a question."})
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, gin.H{"data": questions})
}

// GetQuestionByID godoc
// @Summary Get question by ID
// @Description Retrieve a specific question by its ID
// @Tags questions
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {object} map[string]interface{} "Question details"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/{questionId} [get]
func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
		return
	}

	question, err := h.questionService.GetQuestion(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("Failed to fetch question", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch questions."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": question})
}

// UpdateQuestion godoc
// @Summary Update question
// @Description Update a specific question by its ID
// @Tags questions
// @Accept json
// @Produce json
// @Param questionId path int true "Question ID"
// @Param request body models.QuestionRequest true "Updated question data"
// @Success 200 {object} map[string]string "Question updated"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/{questionId} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
		return
	}
	req := c.MustGet(middleware.QuestionRequestKey).(models.QuestionRequest)

	if err := h.questionService.UpdateQuestion(c.Request.Context(), uint(id), req); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("Failed to update question", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to update question."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question updated successfully."})
}

// DeleteQuestion godoc
// @Summary Delete question
// @Description Delete a question along with its answers and votes
// @Tags questions
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {object} map[string]string "Question deleted"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/{questionId} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("Failed to delete question", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to delete question."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question post has been deleted successfully."})
}

// GetAnswers godoc
// @Summary Get answers for a question
// @Description Retrieve all answers for a specific question
// @Tags answers
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {object} map[string]interface{} "List of answers"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/{questionId}/answers [get]
func (h *QuestionHandler) GetAnswers(c *gin.Context) {
	questionID := c.MustGet(middleware.QuestionIDKey).(uint)

	answers, err := h.answerService.ListAnswers(c.Request.Context(), questionID)
	if err != nil {
		slog.Error("Failed to list answers", "questionId", questionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch answers."})
		return
	}
	if answers == nil {
		answers = []models.Answer{}
	}
	c.JSON(http.StatusOK, gin.H{"data": answers})
}

// CreateAnswer godoc
// @Summary Create answer for a question
// @Description Create a new answer for a specific question
// @Tags answers
// @Accept json
// @Produce json
// @Param questionId path int true "Question ID"
// @Param request body models.AnswerRequest true "Answer data"
// @Success 200 {object} map[string]string "Answer created"
// @Failure 400 {object} map[string]string "Invalid answer content"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/{questionId}/answers [post]
func (h *QuestionHandler) CreateAnswer(c *gin.Context) {
	questionID := c.MustGet(middleware.QuestionIDKey).(uint)
	req := c.MustGet(middleware.AnswerRequestKey).(models.AnswerRequest)

	if _, err := h.answerService.CreateAnswer(c.Request.Context(), questionID, req); err != nil {
		slog.Error("Failed to create answer", "questionId", questionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to create answers."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Answer created successfully."})
}

// DeleteAnswers godoc
// @Summary Delete all answers for a question
// @Description Delete all answers associated with a specific question
// @Tags answers
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {object} map[string]string "Answers deleted"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/{questionId}/answers [delete]
func (h *QuestionHandler) DeleteAnswers(c *gin.Context) {
	questionID := c.MustGet(middleware.QuestionIDKey).(uint)

	if err := h.answerService.DeleteAnswers(c.Request.Context(), questionID); err != nil {
		slog.Error("Failed to delete answers", "questionId", questionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to delete answers."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All answers for the question have been deleted successfully."})
}

// VoteOnQuestion godoc
// @Summary Vote on a question
// @Description Cast an upvote (1) or downvote (-1) on a specific question
// @Tags votes
// @Accept json
// @Produce json
// @Param questionId path int true "Question ID"
// @Param request body models.VoteRequest true "Vote data"
// @Success 200 {object} map[string]string "Vote recorded"
// @Failure 400 {object} map[string]string "Invalid vote value"
// @Failure 404 {object} map[string]string "Question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /questions/{questionId}/vote [post]
func (h *QuestionHandler) VoteOnQuestion(c *gin.Context) {
	questionID := c.MustGet(middleware.QuestionIDKey).(uint)
	req := c.MustGet(middleware.VoteRequestKey).(models.VoteRequest)

	if err := h.voteService.VoteOnQuestion(c.Request.Context(), questionID, *req.Vote); err != nil {
		slog.Error("Failed to record question vote", "questionId", questionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to vote question."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vote on the question has been recorded successfully."})
}
