//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauthor "github.com/MicheleArgenti/cse341-library-management-system/internal/application/author"
	appbook "github.com/MicheleArgenti/cse341-library-management-system/internal/application/book"
	appborrowing "github.com/MicheleArgenti/cse341-library-management-system/internal/application/borrowing"
	appmember "github.com/MicheleArgenti/cse341-library-management-system/internal/application/member"
	appstaff "github.com/MicheleArgenti/cse341-library-management-system/internal/application/staff"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/author"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/staff"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/infrastructure/config"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/infrastructure/persistence/mysql"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/infrastructure/persistence/redis"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/interface/http/handler"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/interface/http/middleware"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/jwt"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/metrics"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/mq"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/response"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,    // 作者仓储
	mysql.NewBookRepository,      // 图书仓储
	mysql.NewMemberRepository,    // 会员仓储
	mysql.NewBorrowingRepository, // 借阅记录仓储
	mysql.NewStaffRepository,     // 馆员仓储
	mysql.NewTxManager,           // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	author.NewService, // 作者领域服务
	book.NewService,   // 图书领域服务
	member.NewService, // 会员领域服务
	staff.NewService,  // 馆员领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewUpdateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,
	appauthor.NewQueryAuthorsUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewQueryBooksUseCase,
	appmember.NewRegisterMemberUseCase,
	appmember.NewUpdateMemberUseCase,
	appmember.NewDeleteMemberUseCase,
	appmember.NewQueryMembersUseCase,
	appborrowing.NewBorrowBookUseCase,
	appborrowing.NewReturnBookUseCase,
	appborrowing.NewDeleteRecordUseCase,
	appborrowing.NewQueryRecordsUseCase,
	appstaff.NewRegisterUseCase,
	appstaff.NewLoginUseCase,
	appstaff.NewLogoutUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器（需要从config提取参数）
	provideSessionStore,          // Session存储
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewMemberHandler,
	handler.NewBorrowingHandler,
	handler.NewStaffHandler,
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideLendingPolicy 从配置提取借阅规则
func provideLendingPolicy(cfg *config.Config) appborrowing.LendingPolicy {
	return appborrowing.LendingPolicy{
		DefaultLoanDays:   cfg.Lending.LoanDays,
		DailyLateFeeCents: cfg.Lending.DailyLateFeeCents,
	}
}

// provideTransactor 将*mysql.TxManager绑定到应用层Transactor接口
func provideTransactor(txManager *mysql.TxManager) appborrowing.Transactor {
	return txManager
}

// provideEventPublisher 创建借阅事件发布器
// mq.enabled为false时返回nil接口，借阅用例静默跳过事件发布
func provideEventPublisher(cfg *config.Config) (appborrowing.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

// provideGinEngine 创建并配置Gin引擎
// 说明：这里直接在函数内注册路由，避免与main.go中的registerRoutes冲突
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	borrowingHandler *handler.BorrowingHandler,
	staffHandler *handler.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 指标中间件依赖已注册的指标
	metrics.InitMetrics()

	r := gin.Default()
	r.Use(middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		staffGroup := v1.Group("/staff")
		{
			staffGroup.POST("/register", staffHandler.Register)
			staffGroup.POST("/login", staffHandler.Login)
			staffGroup.POST("/logout", authMiddleware.RequireAuth(), staffHandler.Logout)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.POST("", authMiddleware.RequireAuth(), authorHandler.CreateAuthor)
			authors.PUT("/:id", authMiddleware.RequireAuth(), authorHandler.UpdateAuthor)
			authors.DELETE("/:id", authMiddleware.RequireAuth(), authorHandler.DeleteAuthor)
		}

		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)
		}

		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.POST("", authMiddleware.RequireAuth(), memberHandler.RegisterMember)
			members.PUT("/:id", authMiddleware.RequireAuth(), memberHandler.UpdateMember)
			members.DELETE("/:id", authMiddleware.RequireAuth(), memberHandler.DeleteMember)
		}

		borrowingGroup := v1.Group("/borrowing")
		{
			borrowingGroup.GET("", borrowingHandler.ListRecords)
			borrowingGroup.POST("/borrow", authMiddleware.RequireAuth(), borrowingHandler.BorrowBook)
			borrowingGroup.PUT("/return/:id", authMiddleware.RequireAuth(), borrowingHandler.ReturnBook)
			borrowingGroup.GET("/:id", borrowingHandler.GetRecord)
			borrowingGroup.DELETE("/:id", authMiddleware.RequireAuth(), borrowingHandler.DeleteRecord)
		}
	}

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// 返回配置好的Gin引擎；任何依赖创建失败则返回error
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideLendingPolicy,
		provideTransactor,
		provideEventPublisher,
		provideGinEngine,
	)
	return nil, nil
}
