package routes

import (
	"github.com/DailyLogTracker/dailylog_backend/internal/config"
	"github.com/DailyLogTracker/dailylog_backend/internal/controllers"
	"github.com/DailyLogTracker/dailylog_backend/internal/middlewares"
	"github.com/DailyLogTracker/dailylog_backend/internal/repository"
	"github.com/DailyLogTracker/dailylog_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	logRepo := repository.NewLogRepository(db, tagRepo)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	logService := services.NewLogService(logRepo)
	tagService := services.NewTagService(tagRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	logController := controllers.NewLogController(logService)
	tagController := controllers.NewTagController(tagService)
	healthController := controllers.NewHealthController(db)

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// APIグループを作成
	api := r.Group("/api")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// ユーザールート
		users := api.Group("/users")
		{
			users.POST("/register", authController.Register)
			users.POST("/login", authController.Login)
			users.GET("/me", authMiddleware, authController.GetMe)
		}

		// ログルート
		logs := api.Group("/logs")
		{
			logs.GET("/:userId", logController.List)
			logs.GET("/:userId/search", logController.Search)
			logs.POST("", logController.Create)
			logs.PUT("/:logId", logController.Update)
			logs.DELETE("/:logId", logController.Delete)
		}

		// タグルート
		api.GET("/tags", tagController.List)
	}

	return r
}
