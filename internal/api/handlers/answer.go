package handlers

import (
	"log/slog"
	"net/http"

	"qna-service/internal/api/middleware"
	"qna-service/internal/models"
	"qna-service/internal/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	voteService *services.VoteService
}

func NewAnswerHandler(voteService *services.VoteService) *AnswerHandler {
	return &AnswerHandler{voteService: voteService}
}

// VoteOnAnswer godoc
// @Summary Vote on an answer
// @Description Cast an upvote (1) or downvote (-1) on a specific answer
// @Tags votes
// @Accept json
// @Produce json
// @Param answerId path int true "Answer ID"
// @Param request body models.VoteRequest true "Vote data"
// @Success 200 {object} map[string]string "Vote recorded"
// @Failure 400 {object} map[string]string "Invalid vote value"
// @Failure 404 {object} map[string]string "Answer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /answers/{answerId}/vote [post]
func (h *AnswerHandler) VoteOnAnswer(c *gin.Context) {
	answerID := c.MustGet(middleware.AnswerIDKey).(uint)
	req := c.MustGet(middleware.VoteRequestKey).(models.VoteRequest)

	if err := h.voteService.VoteOnAnswer(c.Request.Context(), answerID, *req.Vote); err != nil {
		slog.Error("Failed to record answer vote", "answerId", answerID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to vote answer."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vote on the answer has been recorded successfully."})
}
