//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式:运行 `wire gen ./cmd/api` 生成wire_gen.go
// Provider的分组与main.go中的手动注入链一一对应
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/oyemayanq/bookstore-api/internal/application/book"
	apporder "github.com/oyemayanq/bookstore-api/internal/application/order"
	appuser "github.com/oyemayanq/bookstore-api/internal/application/user"
	"github.com/oyemayanq/bookstore-api/internal/domain/book"
	"github.com/oyemayanq/bookstore-api/internal/domain/order"
	"github.com/oyemayanq/bookstore-api/internal/domain/user"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/config"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/persistence/mysql"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/oyemayanq/bookstore-api/internal/infrastructure/storage"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/handler"
	"github.com/oyemayanq/bookstore-api/internal/interface/http/middleware"
	"github.com/oyemayanq/bookstore-api/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	provideImageStore,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewSignupUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewUserBooksUseCase,
	appbook.NewAddReviewUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	provideBookTxManager,
	provideOrderTxManager,
	providePriceResolver,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)
}

// provideSessionStore 从Redis客户端创建会话存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideImageStore 创建本地封面图存储
func provideImageStore(cfg *config.Config) (book.ImageStore, error) {
	return storage.NewLocalImageStore(cfg)
}

// provideBookTxManager 事务管理器(图书应用层接口)
func provideBookTxManager(tm *mysql.TxManager) appbook.TxManager {
	return tm
}

// provideOrderTxManager 事务管理器(订单应用层接口)
func provideOrderTxManager(tm *mysql.TxManager) apporder.TxManager {
	return tm
}

// providePriceResolver 图书领域服务充当订单的价格解析器
func providePriceResolver(s book.Service) order.PriceResolver {
	return s
}

// provideGinEngine 创建Gin引擎并注册路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	registerRoutes(r, cfg, userHandler, bookHandler, orderHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用
// Wire在编译期分析依赖关系并生成初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
