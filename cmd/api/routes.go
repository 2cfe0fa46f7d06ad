package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/oyemayanq/bookstore-api/internal/infrastructure/config"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/handler"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/middleware"
	"github.com/oyemayanq/bookstore-api/pkg/response"
)

// registerRoutes 注册全部路由
// 路由分组:
// - 公开接口:注册/登录/图书列表/图书详情
// - 认证接口:上架/修改/删除图书、评论、订单、登出
func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong"})
	})

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 封面图静态文件
	r.Static("/uploads/images", cfg.Upload.Dir)

	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/signup", userHandler.Signup)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
			users.GET("/books", authMiddleware.RequireAuth(), bookHandler.UserBooks)
		}

		// 图书模块
		books := v1.Group("/books")
		{
			// 公开接口
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)

			// 需要登录
			auth := authMiddleware.RequireAuth()
			books.GET("/:id/edit", auth, bookHandler.GetEdit)
			books.POST("", auth, bookHandler.Create)
			books.PATCH("/:id", auth, bookHandler.Update)
			books.DELETE("/:id", auth, bookHandler.Delete)
			books.POST("/:id/reviews", auth, bookHandler.AddReview)
		}

		// 订单模块(全部需要登录)
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
		}
	}
}
