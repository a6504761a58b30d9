package services

import (
	"github.com/DailyLogTracker/dailylog_backend/internal/models"
	"github.com/DailyLogTracker/dailylog_backend/internal/repository"
)

// TagService タグに関するサービスインターフェース
type TagService interface {
	List(search string, limit int) ([]models.Tag, error)
}

// tagService TagServiceの実装
type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService TagServiceを作成
func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{
		tagRepo: tagRepo,
	}
}

// List タグ一覧を取得
func (s *tagService) List(search string, limit int) ([]models.Tag, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.tagRepo.List(search, limit)
}
