// internal/handler/router.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"expense-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NewRouter wires every route. Everything except /health and /auth requires
// a bearer token.
func NewRouter(h *Handler, authMW *middleware.AuthMiddleware, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), middleware.Timeout(requestTimeout))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}

	api := router.Group("/")
	api.Use(authMW.RequireAuth())
	{
		api.GET("/user/profile", h.GetProfile)
		api.PUT("/user/profile", h.UpdateProfile)
		api.POST("/user/telegram/link", h.IssueTelegramLink)

		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.CreateCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		api.GET("/expenses", h.ListExpenses)
		api.POST("/expenses", h.CreateExpense)
		api.PUT("/expenses/:id", h.UpdateExpense)
		api.DELETE("/expenses/:id", h.DeleteExpense)

		api.GET("/propagations", h.ListPropagations)
		api.POST("/propagations/:id/retry", h.RetryPropagation)

		api.GET("/analytics", h.Analytics)
	}

	return router
}

// TelegramWebhook accepts updates pushed by Telegram and hands them to process.
// The reply is sent by process itself, so the webhook always answers 200 once
// the body parses.
func TelegramWebhook(process func(ctx context.Context, update tgbotapi.Update)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Failed to parse telegram update", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		process(c.Request.Context(), update)
		c.Status(http.StatusOK)
	}
}
