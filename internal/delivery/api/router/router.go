// Package router wires the API routes onto echo.
package router

import (
	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/router/handler"
	"patrol/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ScanHandler         *handler.ScanHandler
	DashboardHandler    *handler.DashboardHandler
	NotificationHandler *handler.NotificationHandler
	CheckpointHandler   *handler.CheckpointHandler
	GuardHandler        *handler.GuardHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	scanHandler         *handler.ScanHandler
	dashboardHandler    *handler.DashboardHandler
	notificationHandler *handler.NotificationHandler
	checkpointHandler   *handler.CheckpointHandler
	guardHandler        *handler.GuardHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		scanHandler:         params.ScanHandler,
		dashboardHandler:    params.DashboardHandler,
		notificationHandler: params.NotificationHandler,
		checkpointHandler:   params.CheckpointHandler,
		guardHandler:        params.GuardHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/guards/login", r.authHandler.GuardLogin)
		authGroup.POST("/admins/login", r.authHandler.AdminLogin)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	requireGuard := r.authMiddleware.RequireRole(entity.RoleGuard)
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	scansGroup := apiV1.Group("/scans")
	{
		scansGroup.POST("/record", r.scanHandler.RecordScan, requireGuard)
		scansGroup.GET("", r.scanHandler.ListScans, requireAdmin)
	}

	dashboardGroup := apiV1.Group("/dashboard", requireAdmin)
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.GetStats)
		dashboardGroup.GET("/timeline", r.dashboardHandler.GetTimeline)
		dashboardGroup.GET("/guards/performance", r.dashboardHandler.GetGuardPerformance)
	}

	notificationsGroup := apiV1.Group("/notifications", requireAdmin)
	{
		notificationsGroup.GET("", r.notificationHandler.GetFeed)
		notificationsGroup.POST("/state", r.notificationHandler.UpdateState)
	}

	checkpointsGroup := apiV1.Group("/checkpoints", requireAdmin)
	{
		checkpointsGroup.GET("", r.checkpointHandler.ListCheckpoints)
		checkpointsGroup.POST("", r.checkpointHandler.CreateCheckpoint)
		checkpointsGroup.GET("/geojson", r.checkpointHandler.ExportGeoJSON)
		checkpointsGroup.GET("/:id/qr", r.checkpointHandler.GetQRCode)
	}

	guardsGroup := apiV1.Group("/guards", requireAdmin)
	{
		guardsGroup.GET("", r.guardHandler.ListGuards)
		guardsGroup.PUT("/:id/assignments", r.guardHandler.ReplaceAssignments)
		guardsGroup.POST("/:id/assignments/:checkpointId/reset", r.guardHandler.ResetAssignment)
	}
}
