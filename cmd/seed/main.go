package main

import (
	"context"
	"log"
	"log/slog"

	"qna-service/configs"
	"qna-service/configs/database"
	"qna-service/internal/models"
	"qna-service/internal/repositories/postgres"
)

func main() {
	cfg := configs.Load()

	slog.Info("Starting database seeding...")

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	slog.Info("Database connection established")

	questionRepo := postgres.NewQuestionRepository(db)
	answerRepo := postgres.NewAnswerRepository(db)

	ctx := context.Background()

	questions := []models.Question{
		{
			Title:       "How do I tune Postgres connection pool sizes?",
			Description: "Our service sees occasional connection exhaustion under load. What are sensible max open/idle settings?",
			Category:    "databases",
		},
		{
			Title:       "When should a REST endpoint return 404 vs 400?",
			Description: "For a path parameter that parses but matches nothing, which status is correct?",
			Category:    "api-design",
		},
		{
			Title:       "Is an append-only vote log better than a counter column?",
			Description: "We expect many concurrent voters on the same row. Which design avoids lost updates?",
			Category:    "databases",
		},
	}

	for i := range questions {
		if err := questionRepo.Create(ctx, &questions[i]); err != nil {
			slog.Warn("Failed to seed question", "title", questions[i].Title, "error", err)
			continue
		}
		slog.Info("Created question", "id", questions[i].ID, "title", questions[i].Title)
	}

	if len(questions) > 0 && questions[0].ID != 0 {
		answers := []models.Answer{
			{QuestionID: questions[0].ID, Content: "Start with max open equal to your core count times four and measure from there."},
			{QuestionID: questions[0].ID, Content: "Keep idle connections low; stale ones hold server memory for nothing."},
		}
		for i := range answers {
			if err := answerRepo.Create(ctx, &answers[i]); err != nil {
				slog.Warn("Failed to seed answer", "error", err)
				continue
			}
			slog.Info("Created answer", "id", answers[i].ID)
		}
	}

	slog.Info("Database seeding completed successfully!")
}
