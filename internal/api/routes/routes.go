package routes

import (
	"qna-service/internal/api/handlers"
	"qna-service/internal/api/middleware"
	"qna-service/internal/repositories/postgres"
	"qna-service/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Router struct {
	engine          *gin.Engine
	questionHandler *handlers.QuestionHandler
	answerHandler   *handlers.AnswerHandler
	existsMW        *middleware.ExistsMiddleware
}

func NewRouter(db *gorm.DB) *Router {
	return NewRouterWithRepositories(
		postgres.NewQuestionRepository(db),
		postgres.NewAnswerRepository(db),
		postgres.NewVoteRepository(db),
	)
}

// NewRouterWithRepositories wires the router over explicit repositories,
// which lets tests substitute in-memory implementations.
func NewRouterWithRepositories(
	questionRepo postgres.QuestionRepository,
	answerRepo postgres.AnswerRepository,
	voteRepo postgres.VoteRepository,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Add middlewares
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.LogApi())

	// Initialize services
	questionService := services.NewQuestionService(questionRepo, answerRepo, voteRepo)
	answerService := services.NewAnswerService(answerRepo)
	voteService := services.NewVoteService(voteRepo)

	return &Router{
		engine:          engine,
		questionHandler: handlers.NewQuestionHandler(questionService, answerService, voteService),
		answerHandler:   handlers.NewAnswerHandler(voteService),
		existsMW:        middleware.NewExistsMiddleware(questionService, answerService),
	}
}

func (r *Router) SetupRoutes() {
	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/test", func(c *gin.Context) {
		c.JSON(200, "Server API is working 🚀")
	})
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Question routes
	questions := r.engine.Group("/questions")
	{
		questions.GET("", r.questionHandler.GetAllQuestions)
		questions.POST("", middleware.ValidateQuestionPayload(), r.questionHandler.CreateQuestion)
		questions.GET("/search", r.questionHandler.SearchQuestions)
		questions.GET("/:questionId", r.questionHandler.GetQuestionByID)
		questions.PUT("/:questionId", middleware.ValidateQuestionPayload(), r.questionHandler.UpdateQuestion)
		questions.DELETE("/:questionId", r.questionHandler.DeleteQuestion)

		// Answer routes scoped to a question; the existence guard runs first
		questions.GET("/:questionId/answers", r.existsMW.RequireQuestion(), r.questionHandler.GetAnswers)
		questions.POST("/:questionId/answers", r.existsMW.RequireQuestion(), middleware.ValidateAnswerContent(), r.questionHandler.CreateAnswer)
		questions.DELETE("/:questionId/answers", r.existsMW.RequireQuestion(), r.questionHandler.DeleteAnswers)

		// Voting
		questions.POST("/:questionId/vote", r.existsMW.RequireQuestion(), middleware.ValidateVote(), r.questionHandler.VoteOnQuestion)
	}

	// Answer routes
	answers := r.engine.Group("/answers")
	{
		answers.POST("/:answerId/vote", r.existsMW.RequireAnswer(), middleware.ValidateVote(), r.answerHandler.VoteOnAnswer)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
