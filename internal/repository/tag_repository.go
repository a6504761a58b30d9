package repository

import (
	"errors"
	"strings"

	"github.com/DailyLogTracker/dailylog_backend/internal/models"

	"gorm.io/gorm"
)

// TagRepository タグに関するデータベース操作を行うインターフェース。
// FindOrCreate と ReplaceForLog は呼び出し元のトランザクション（*gorm.DB）上で
// 動作するため、ログ本体の書き込みと同一のアトミックな単位に含められる
type TagRepository interface {
	FindOrCreate(db *gorm.DB, name string) (*models.Tag, error)
	ReplaceForLog(db *gorm.DB, logID uint, tagNames []string) error
	List(search string, limit int) ([]models.Tag, error)
	GetTagsForLog(logID uint) ([]models.Tag, error)
}

// tagRepository TagRepositoryの実装
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository TagRepositoryを作成
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindOrCreate タグを検索または作成。
// 同名タグの同時作成は事前の読み取りでは防げないため、INSERTの一意制約違反を
// 競合の判定に使い、負けた側は既存行を引き直す
func (r *tagRepository) FindOrCreate(db *gorm.DB, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("タグ名は空にできません")
	}

	var tag models.Tag
	err := db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.Tag{Name: name}
	if err := db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 同時作成との競合。勝った側の行を取得する
			var existing models.Tag
			if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &tag, nil
}

// ReplaceForLog ログのタグ集合を完全に置き換える。
// 既存の関連をすべて削除してから、名前ごとにタグを解決して関連付ける。
// 同一呼び出し内の重複した名前は二重リンクにならない
func (r *tagRepository) ReplaceForLog(db *gorm.DB, logID uint, tagNames []string) error {
	if err := db.Where("log_id = ?", logID).Delete(&models.LogTag{}).Error; err != nil {
		return err
	}

	linked := make(map[uint]bool)
	for _, name := range tagNames {
		if strings.TrimSpace(name) == "" {
			continue
		}
		tag, err := r.FindOrCreate(db, name)
		if err != nil {
			return err
		}
		if linked[tag.ID] {
			continue
		}
		if err := db.Create(&models.LogTag{LogID: logID, TagID: tag.ID}).Error; err != nil {
			return err
		}
		linked[tag.ID] = true
	}

	return nil
}

// List タグ一覧を取得
func (r *tagRepository) List(search string, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	query := r.db.Model(&models.Tag{})

	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.
		Limit(limit).
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}

// GetTagsForLog ログに関連付けられたタグを取得
func (r *tagRepository) GetTagsForLog(logID uint) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Model(&models.Tag{}).
		Joins("JOIN log_tags ON tags.id = log_tags.tag_id").
		Where("log_tags.log_id = ?", logID).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
