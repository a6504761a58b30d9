package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/DailyLogTracker/dailylog_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TagController タグに関するコントローラー
type TagController struct {
	tagService services.TagService
}

// NewTagController TagControllerを作成
func NewTagController(tagService services.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// List タグ一覧を取得
func (c *TagController) List(ctx *gin.Context) {
	search := ctx.Query("search")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	tags, err := c.tagService.List(search, limit)
	if err != nil {
		log.Printf("タグ一覧の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tags": tags})
}
