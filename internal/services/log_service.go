package services

import (
	"time"

	"github.com/DailyLogTracker/dailylog_backend/internal/models"
	"github.com/DailyLogTracker/dailylog_backend/internal/repository"
)

// LogResponse ログのAPIレスポンス形式。タグは名前のリストに平坦化される
type LogResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
}

// LogService ログに関するサービスインターフェース
type LogService interface {
	Create(userID uint, title, content, mood string, tagNames []string) (uint, error)
	ListByUser(userID uint) ([]LogResponse, error)
	Search(userID uint, term string) ([]LogResponse, error)
	Update(id uint, title, content, mood string, tagNames []string) error
	Delete(id uint) error
}

// logService LogServiceの実装
type logService struct {
	logRepo repository.LogRepository
}

// NewLogService LogServiceを作成
func NewLogService(logRepo repository.LogRepository) LogService {
	return &logService{
		logRepo: logRepo,
	}
}

// Create 新しいログを作成してIDを返す
func (s *logService) Create(userID uint, title, content, mood string, tagNames []string) (uint, error) {
	logEntry := &models.Log{
		UserID:  userID,
		Title:   title,
		Content: content,
		Mood:    mood,
	}

	if err := s.logRepo.Create(logEntry, tagNames); err != nil {
		return 0, err
	}

	return logEntry.ID, nil
}

// ListByUser ユーザーのログ一覧をレスポンス形式で取得
func (s *logService) ListByUser(userID uint) ([]LogResponse, error) {
	logs, err := s.logRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toLogResponses(logs), nil
}

// Search ログを検索してレスポンス形式で取得
func (s *logService) Search(userID uint, term string) ([]LogResponse, error) {
	logs, err := s.logRepo.Search(userID, term)
	if err != nil {
		return nil, err
	}
	return toLogResponses(logs), nil
}

// Update ログを更新
func (s *logService) Update(id uint, title, content, mood string, tagNames []string) error {
	return s.logRepo.Update(id, title, content, mood, tagNames)
}

// Delete ログを削除
func (s *logService) Delete(id uint) error {
	return s.logRepo.Delete(id)
}

// toLogResponses モデルをレスポンス形式に変換。
// タグのないログも null ではなく空のリストになる
func toLogResponses(logs []models.Log) []LogResponse {
	responses := make([]LogResponse, 0, len(logs))
	for _, logEntry := range logs {
		tags := make([]string, 0, len(logEntry.Tags))
		for _, tag := range logEntry.Tags {
			tags = append(tags, tag.Name)
		}
		responses = append(responses, LogResponse{
			ID:        logEntry.ID,
			Title:     logEntry.Title,
			Content:   logEntry.Content,
			Mood:      logEntry.Mood,
			Timestamp: logEntry.Timestamp,
			Tags:      tags,
		})
	}
	return responses
}
