package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController ヘルスチェックに関するコントローラー
type HealthController struct {
	db        *gorm.DB
	startTime time.Time
}

// NewHealthController HealthControllerを作成
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthStatus ヘルスステータスレスポンス
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Check ヘルスチェック。データベースへの疎通も確認する
func (c *HealthController) Check(ctx *gin.Context) {
	code := http.StatusOK
	status := "ok"
	dbStatus := "ok"

	sqlDB, err := c.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		code = http.StatusServiceUnavailable
		status = "degraded"
		dbStatus = "unreachable"
	}

	ctx.JSON(code, &HealthStatus{
		Status:    status,
		Database:  dbStatus,
		Uptime:    time.Since(c.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
