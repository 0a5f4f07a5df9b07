package handlers

import (
	"fintrack/internal/repository"
	"fintrack/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB           *pgxpool.Pool
	Transactions *service.TransactionService
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:           db,
		Transactions: service.NewTransactionService(repository.NewTransactionRepository(db)),
	}
}
