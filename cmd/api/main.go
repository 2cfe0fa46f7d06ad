package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appbook "github.com/oyemayanq/bookstore-api/internal/application/book"
	apporder "github.com/oyemayanq/bookstore-api/internal/application/order"
	appuser "github.com/oyemayanq/bookstore-api/internal/application/user"
	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	"github.com/oyemayanq/bookstore-api/internal/domain/user"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/config"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/persistence/mysql"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/storage"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/handler"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/middleware"
	"github.com/oyemayanq/bookstore-api/pkg/jwt"
	"github.com/oyemayanq/bookstore-api/pkg/logger"
)

// main 主程序入口
// 说明：手动依赖注入(wire.go提供等价的Wire注入器定义)
// 依赖链：Repository ← Service ← UseCase ← Handler
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	}); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.L().Fatal("init database", zap.Error(err))
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.L().Fatal("init redis", zap.Error(err))
	}
	defer redisClient.Close()

	// 5. 初始化封面图存储
	imageStore, err := storage.NewLocalImageStore(cfg)
	if err != nil {
		logger.L().Fatal("init image store", zap.Error(err))
	}

	// 6. 依赖注入(手动组装)

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)

	// 应用层
	signupUseCase := appuser.NewSignupUseCase(userService, jwtManager)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(jwtManager, sessionStore)
	publishBookUseCase := appbook.NewPublishBookUseCase(bookService, imageStore)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, imageStore)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, imageStore)
	userBooksUseCase := appbook.NewUserBooksUseCase(bookService)
	addReviewUseCase := appbook.NewAddReviewUseCase(bookRepo, txManager)
	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, bookService, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)

	// 接口层
	userHandler := handler.NewUserHandler(signupUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(publishBookUseCase, getBookUseCase, listBooksUseCase,
		updateBookUseCase, deleteBookUseCase, userBooksUseCase, addReviewUseCase, cfg)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, getOrderUseCase, listOrdersUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎并注册路由
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	registerRoutes(r, cfg, userHandler, bookHandler, orderHandler, authMiddleware)

	// 8. 启动HTTP服务(显式生命周期,便于优雅停机)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.L().Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	// 9. 等待退出信号,优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("server shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.L().Info("server stopped")
}
