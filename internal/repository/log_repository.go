package repository

import (
	"errors"
	"time"

	"github.com/DailyLogTracker/dailylog_backend/internal/models"

	"gorm.io/gorm"
)

// ErrLogNotFound 指定IDのログが存在しない場合に返す
var ErrLogNotFound = errors.New("ログが見つかりません")

// LogRepository ログに関するデータベース操作を行うインターフェース
type LogRepository interface {
	Create(log *models.Log, tagNames []string) error
	FindByID(id uint) (*models.Log, error)
	ListByUser(userID uint) ([]models.Log, error)
	Search(userID uint, term string) ([]models.Log, error)
	Update(id uint, title, content, mood string, tagNames []string) error
	Delete(id uint) error
}

// logRepository LogRepositoryの実装
type logRepository struct {
	db      *gorm.DB
	tagRepo TagRepository
}

// NewLogRepository LogRepositoryを作成
func NewLogRepository(db *gorm.DB, tagRepo TagRepository) LogRepository {
	return &logRepository{db: db, tagRepo: tagRepo}
}

// Create 新しいログを作成。ログ本体とタグの関連付けを同一トランザクションで書き込み、
// 途中で失敗した場合はどちらも残らない
func (r *logRepository) Create(logEntry *models.Log, tagNames []string) error {
	if logEntry.Timestamp.IsZero() {
		logEntry.Timestamp = time.Now()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// many2many 側の自動書き込みを避け、関連付けは ReplaceForLog に一本化する
		if err := tx.Omit("Tags").Create(logEntry).Error; err != nil {
			return err
		}
		return r.tagRepo.ReplaceForLog(tx, logEntry.ID, tagNames)
	})
}

// FindByID IDでログを検索
func (r *logRepository) FindByID(id uint) (*models.Log, error) {
	var logEntry models.Log
	if err := r.db.Preload("Tags").First(&logEntry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return &logEntry, nil
}

// ListByUser ユーザーのログ一覧を新しい順に取得
func (r *logRepository) ListByUser(userID uint) ([]models.Log, error) {
	var logs []models.Log
	if err := r.db.Preload("Tags").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Search タイトル・本文・タグ名のいずれかに term を部分一致で含むログを検索。
// タグでの一致は副問い合わせで解決するため、複数タグに一致しても結果に重複は出ない
func (r *logRepository) Search(userID uint, term string) ([]models.Log, error) {
	pattern := "%" + term + "%"

	tagged := r.db.Model(&models.LogTag{}).
		Select("log_tags.log_id").
		Joins("JOIN tags ON tags.id = log_tags.tag_id").
		Where("tags.name LIKE ?", pattern)

	var logs []models.Log
	if err := r.db.Preload("Tags").
		Where("user_id = ?", userID).
		Where("title LIKE ? OR content LIKE ? OR id IN (?)", pattern, pattern, tagged).
		Order("timestamp DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Update ログの項目を上書きし、タグ集合を完全に置き換える。
// 存在しないIDの場合は ErrLogNotFound を返す
func (r *logRepository) Update(id uint, title, content, mood string, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 変更のない UPDATE は MySQL で affected rows が 0 になるため、
		// 存在確認は行の読み取りで行う
		var logEntry models.Log
		if err := tx.First(&logEntry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLogNotFound
			}
			return err
		}

		// 空文字も含めて全項目を上書きするため map で指定
		if err := tx.Model(&models.Log{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":   title,
			"content": content,
			"mood":    mood,
		}).Error; err != nil {
			return err
		}
		return r.tagRepo.ReplaceForLog(tx, id, tagNames)
	})
}

// Delete ログを削除。タグとの関連も同一トランザクションで削除する。
// タグ行そのものは残る（どのログからも参照されないタグは許容される）
func (r *logRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Log{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLogNotFound
		}
		return tx.Where("log_id = ?", id).Delete(&models.LogTag{}).Error
	})
}
