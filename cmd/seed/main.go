package main

import (
	"context"
	"log"
	"os"

	"fintrack/internal/db"
	"fintrack/internal/domain"
	"fintrack/internal/repository"
)

// Seeds a handful of transactions for local development.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	userID := os.Getenv("SEED_USER_ID")
	if userID == "" {
		userID = "demo-user"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewTransactionRepository(pool)
	ctx := context.Background()

	samples := []domain.Transaction{
		{UserID: userID, Title: "Salary", Amount: 2500, Category: "income"},
		{UserID: userID, Title: "Rent", Amount: -900, Category: "housing"},
		{UserID: userID, Title: "Groceries", Amount: -84.50, Category: "food"},
		{UserID: userID, Title: "Coffee", Amount: -4.20, Category: "food"},
		{UserID: userID, Title: "Freelance gig", Amount: 300, Category: "income"},
	}

	for i := range samples {
		if err := repo.Create(ctx, &samples[i]); err != nil {
			log.Fatalf("seed insert failed: %v", err)
		}
		log.Printf("created transaction id=%d title=%q amount=%.2f\n", samples[i].ID, samples[i].Title, samples[i].Amount)
	}

	sum, err := repo.SummaryByUserID(ctx, userID)
	if err != nil {
		log.Fatalf("summary failed: %v", err)
	}
	log.Printf("summary for %s: balance=%.2f income=%.2f expense=%.2f\n", userID, sum.Balance, sum.Income, sum.Expense)
}
