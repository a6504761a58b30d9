package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/DailyLogTracker/dailylog_backend/internal/repository"
	"github.com/DailyLogTracker/dailylog_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// LogController ログに関するコントローラー
type LogController struct {
	logService services.LogService
}

// NewLogController LogControllerを作成
func NewLogController(logService services.LogService) *LogController {
	return &LogController{
		logService: logService,
	}
}

// CreateLogRequest ログ作成リクエスト。キー名は既存クライアントとの互換のためcamelCase
type CreateLogRequest struct {
	UserID  uint     `json:"userId" binding:"required"`
	Title   string   `json:"title" binding:"required,max=100"`
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood" binding:"max=20"`
	Tags    []string `json:"tags"`
}

// UpdateLogRequest ログ更新リクエスト
type UpdateLogRequest struct {
	Title   string   `json:"title" binding:"required,max=100"`
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood" binding:"max=20"`
	Tags    []string `json:"tags"`
}

// List ユーザーのログ一覧を取得
func (c *LogController) List(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	logs, err := c.logService.ListByUser(userID)
	if err != nil {
		log.Printf("ログ一覧の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, logs)
}

// Search ユーザーのログを検索
func (c *LogController) Search(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	term := ctx.Query("term")

	logs, err := c.logService.Search(userID, term)
	if err != nil {
		log.Printf("ログ検索に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, logs)
}

// Create 新しいログを作成
func (c *LogController) Create(ctx *gin.Context) {
	var req CreateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logID, err := c.logService.Create(req.UserID, req.Title, req.Content, req.Mood, req.Tags)
	if err != nil {
		log.Printf("ログ作成に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Log created successfully",
		"logId":   logID,
	})
}

// Update ログの項目とタグを置き換える
func (c *LogController) Update(ctx *gin.Context) {
	logID, err := parseIDParam(ctx, "logId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log ID"})
		return
	}

	var req UpdateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.logService.Update(logID, req.Title, req.Content, req.Mood, req.Tags); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
			return
		}
		log.Printf("ログ更新に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Log updated successfully"})
}

// Delete ログを削除
func (c *LogController) Delete(ctx *gin.Context) {
	logID, err := parseIDParam(ctx, "logId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log ID"})
		return
	}

	if err := c.logService.Delete(logID); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
			return
		}
		log.Printf("ログ削除に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Log deleted successfully"})
}

// parseIDParam パスパラメータをIDとして解釈
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
