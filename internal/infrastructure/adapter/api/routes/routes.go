package routes

import (
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/handler"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	contentHandler *handler.ContentHandler,
	engagementHandler *handler.EngagementHandler,
	accountHandler *handler.AccountHandler,
	adHandler *handler.AdHandler,
	adminHandler *handler.AdminHandler,
) {
	// Content routes
	contentRoutes := router.Group("/content")
	{
		contentRoutes.POST("", contentHandler.Create)
		contentRoutes.GET("/:contentId", contentHandler.Get)
	}

	// Engagement routes
	router.POST("/posts/:postId/engagements", engagementHandler.Engage)

	// Account routes
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("/:userId/balance", accountHandler.GetBalance)
		userRoutes.GET("/:userId/transactions", accountHandler.ListTransactions)
		userRoutes.GET("/:userId/limits", accountHandler.GetLimits)
	}

	// Ad delivery routes
	adRoutes := router.Group("/ads")
	{
		adRoutes.GET("/:adId/eligibility", adHandler.Eligibility)
		adRoutes.POST("/:adId/impressions", adHandler.RecordImpression)
	}

	// Privileged routes; role checks happen inside the use cases
	adminRoutes := router.Group("/admin")
	{
		adminRoutes.POST("/content/:contentId/approval", adminHandler.Transition)
		adminRoutes.POST("/users/:userId/balance-adjustments", adminHandler.AdjustBalance)
		adminRoutes.PUT("/users/:userId/verification", adminHandler.UpdateVerification)
		adminRoutes.DELETE("/users/:userId", adminHandler.DeleteUser)
		adminRoutes.POST("/users/:userId/roles", adminHandler.AssignRole)
		adminRoutes.GET("/audit-log", adminHandler.ListAuditLog)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
