// internal/handler/analytics.go
package handler

import (
	"net/http"

	"expense-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

// Analytics godoc
// @Summary Summary, breakdown and chart series for a period
// @Tags analytics
// @Produce json
// @Param period query string false "thisMonth (default)|lastMonth|thisYear|lastYear|all"
// @Success 200 {object} analytics.Report
// @Failure 400 {object} map[string]string
// @Router /analytics [get]
func (h *Handler) Analytics(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	period, ok := bindPeriod(c, domain.PeriodThisMonth)
	if !ok {
		return
	}
	report, err := h.svc.Analytics(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) ListPropagations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	pending, err := h.svc.ListPendingPropagations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// RetryPropagation re-runs only the expense side of a pending rename or delete.
func (h *Handler) RetryPropagation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	p, err := h.svc.RetryPropagation(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
