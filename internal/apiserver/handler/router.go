package handler

import (
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/apiserver/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every endpoint under /api on r. NoRoute is left to
// the caller so it can be set on the engine.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	auth := middleware.JWTAuthMiddleware(h.jwtService, h.db, h.logger)
	requireAdmin := middleware.RequireRoles(database.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/test", h.Test)

		test := api.Group("/test")
		test.GET("/status", h.TestStatus)
		test.GET("/public", h.TestPublic)
		test.POST("/echo", h.TestEcho)

		authGroup := api.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/status", h.AuthStatus)
		authGroup.GET("/test-db-connection", h.TestDBConnection)

		users := api.Group("/users", auth)
		users.GET("/me", h.GetUserInfo)
		users.PUT("/me", h.UpdateProfile)
		users.PUT("/me/password", h.ChangePassword)

		admin := api.Group("/admin", auth, requireAdmin)
		admin.GET("/health", h.AdminHealth)
		admin.GET("/user-stats", h.UserStats)
		admin.GET("/pending-approvals", h.PendingApprovals)
		admin.GET("/all-users", h.AllUsers)
		admin.POST("/approve-user/:id", h.ApproveUser)
		admin.DELETE("/reject-user/:id", h.RejectUser)

		crops := api.Group("/crops", auth, middleware.RequireRoles(database.RoleFarmer, database.RoleAdmin))
		crops.POST("", h.CreateCrop)
		crops.GET("", h.ListCrops)
		crops.GET("/stats", h.CropStats)
		crops.GET("/:id", h.GetCrop)
		crops.PUT("/:id", h.UpdateCrop)
		crops.DELETE("/:id", h.DeleteCrop)

		consumerOrAdmin := middleware.RequireRoles(database.RoleConsumer, database.RoleAdmin)
		orders := api.Group("/orders", auth)
		orders.POST("", consumerOrAdmin, h.CreateOrder)
		orders.GET("/my", consumerOrAdmin, h.MyOrders)
		orders.GET("/distributor", middleware.RequireRoles(database.RoleDistributor, database.RoleAdmin), h.DistributorOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}
