package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

// @title           图书馆管理系统API
// @version         1.0
// @description     图书馆藏、会员与借阅台账管理服务
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

// main 主程序入口
// 说明：手动依赖注入（wire.go提供Wire版本，运行`wire gen ./cmd/api`生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())
	fmt.Printf("  - 默认借期: %d天, 逾期费: %d分/天\n", cfg.Lending.LoanDays, cfg.Lending.DailyLateFeeCents)

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 初始化RabbitMQ（可选）
	// 未启用时publisher保持nil接口，借阅用例静默跳过事件发布
	var publisher appborrowing.EventPublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer p.Close()
		publisher = p
		fmt.Printf("  - RabbitMQ: %s (exchange=%s)\n", cfg.MQ.URL, cfg.MQ.Exchange)
	}

	// 6. 依赖注入（手动组装）
	// 依赖注入链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	memberRepo := mysql.NewMemberRepository(db)
	recordRepo := mysql.NewBorrowingRepository(db)
	staffRepo := mysql.NewStaffRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo)
	memberService := member.NewService(memberRepo)
	staffService := staff.NewService(staffRepo)

	// 应用层
	lendingPolicy := appborrowing.LendingPolicy{
		DefaultLoanDays:   cfg.Lending.LoanDays,
		DailyLateFeeCents: cfg.Lending.DailyLateFeeCents,
	}

	createAuthorUseCase := appauthor.NewCreateAuthorUseCase(authorService)
	updateAuthorUseCase := appauthor.NewUpdateAuthorUseCase(authorService)
	deleteAuthorUseCase := appauthor.NewDeleteAuthorUseCase(authorService)
	queryAuthorsUseCase := appauthor.NewQueryAuthorsUseCase(authorService)

	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)
	queryBooksUseCase := appbook.NewQueryBooksUseCase(bookService)

	registerMemberUseCase := appmember.NewRegisterMemberUseCase(memberService)
	updateMemberUseCase := appmember.NewUpdateMemberUseCase(memberService)
	deleteMemberUseCase := appmember.NewDeleteMemberUseCase(memberService)
	queryMembersUseCase := appmember.NewQueryMembersUseCase(memberService)

	borrowBookUseCase := appborrowing.NewBorrowBookUseCase(
		recordRepo, bookRepo, memberRepo, txManager, publisher, lendingPolicy)
	returnBookUseCase := appborrowing.NewReturnBookUseCase(
		recordRepo, bookRepo, memberRepo, txManager, publisher, lendingPolicy)
	deleteRecordUseCase := appborrowing.NewDeleteRecordUseCase(recordRepo)
	queryRecordsUseCase := appborrowing.NewQueryRecordsUseCase(recordRepo, bookRepo, memberRepo)

	registerStaffUseCase := appstaff.NewRegisterUseCase(staffService)
	loginUseCase := appstaff.NewLoginUseCase(staffService, jwtManager, sessionStore)
	logoutUseCase := appstaff.NewLogoutUseCase(sessionStore)

	// 接口层
	authorHandler := handler.NewAuthorHandler(
		createAuthorUseCase, updateAuthorUseCase, deleteAuthorUseCase, queryAuthorsUseCase)
	bookHandler := handler.NewBookHandler(
		createBookUseCase, updateBookUseCase, deleteBookUseCase, queryBooksUseCase)
	memberHandler := handler.NewMemberHandler(
		registerMemberUseCase, updateMemberUseCase, deleteMemberUseCase, queryMembersUseCase)
	borrowingHandler := handler.NewBorrowingHandler(
		borrowBookUseCase, returnBookUseCase, deleteRecordUseCase, queryRecordsUseCase)
	staffHandler := handler.NewStaffHandler(registerStaffUseCase, loginUseCase, logoutUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 8. 注册路由
	registerRoutes(r, authorHandler, bookHandler, memberHandler, borrowingHandler, staffHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标:     http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 约定：查询接口公开,写操作需馆员登录
func registerRoutes(
	r *gin.Engine,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	borrowingHandler *handler.BorrowingHandler,
	staffHandler *handler.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
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

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 馆员模块
		staffGroup := v1.Group("/staff")
		{
			staffGroup.POST("/register", staffHandler.Register)
			staffGroup.POST("/login", staffHandler.Login)
			staffGroup.POST("/logout", authMiddleware.RequireAuth(), staffHandler.Logout)
		}

		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.POST("", authMiddleware.RequireAuth(), authorHandler.CreateAuthor)
			authors.PUT("/:id", authMiddleware.RequireAuth(), authorHandler.UpdateAuthor)
			authors.DELETE("/:id", authMiddleware.RequireAuth(), authorHandler.DeleteAuthor)
		}

		// 图书模块
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)
		}

		// 会员模块
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.POST("", authMiddleware.RequireAuth(), memberHandler.RegisterMember)
			members.PUT("/:id", authMiddleware.RequireAuth(), memberHandler.UpdateMember)
			members.DELETE("/:id", authMiddleware.RequireAuth(), memberHandler.DeleteMember)
		}

		// 借阅模块
		// 注意路由顺序：/borrow、/return/:id必须先于/:id注册
		borrowing := v1.Group("/borrowing")
		{
			borrowing.GET("", borrowingHandler.ListRecords)
			borrowing.POST("/borrow", authMiddleware.RequireAuth(), borrowingHandler.BorrowBook)
			borrowing.PUT("/return/:id", authMiddleware.RequireAuth(), borrowingHandler.ReturnBook)
			borrowing.GET("/:id", borrowingHandler.GetRecord)
			borrowing.DELETE("/:id", authMiddleware.RequireAuth(), borrowingHandler.DeleteRecord)
		}
	}
}
