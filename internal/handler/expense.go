// internal/handler/expense.go
package handler

import (
	"net/http"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ListExpenses godoc
// @Summary List the caller's expenses, newest first
// @Tags expenses
// @Produce json
// @Param period query string false "thisMonth|lastMonth|thisYear|lastYear|all"
// @Success 200 {array} domain.Expense
// @Router /expenses [get]
func (h *Handler) ListExpenses(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	period, ok := bindPeriod(c, domain.PeriodAll)
	if !ok {
		return
	}
	expenses, err := h.svc.ListExpenses(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.ExpenseInput
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.svc.CreateExpense(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.ExpenseUpdate
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.svc.UpdateExpense(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteExpense(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
