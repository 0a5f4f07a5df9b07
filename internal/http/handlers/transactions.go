package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fintrack/internal/domain"
	"fintrack/internal/logger"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTransaction handles POST /api/transactions
func (h *Handler) CreateTransaction(c *gin.Context) {
	var in service.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	tx, err := h.Transactions.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// ListTransactions handles GET /api/transactions/:userId
func (h *Handler) ListTransactions(c *gin.Context) {
	userID := c.Param("userId")

	txs, err := h.Transactions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

// GetSummary handles GET /api/transactions/summary/:userId
func (h *Handler) GetSummary(c *gin.Context) {
	userID := c.Param("userId")

	sum, err := h.Transactions.Summary(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

// DeleteTransaction handles DELETE /api/transactions/:id
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid transaction id"})
		return
	}

	tx, err := h.Transactions.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "transaction not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "transaction deleted successfully",
		"deletedItem": tx,
	})
}

// internalError hides store/network detail from the caller; the specific
// failure is already logged at the service layer.
func internalError(c *gin.Context, err error) {
	logger.Debug("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
