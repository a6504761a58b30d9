package repository

import (
	"testing"
	"time"

	"github.com/DailyLogTracker/dailylog_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLogRepos(db *gorm.DB) (LogRepository, TagRepository) {
	tagRepo := NewTagRepository(db)
	return NewLogRepository(db, tagRepo), tagRepo
}

func TestCreateAndListByUser(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	user := createTestUser(t, db, "alice")

	logEntry := &models.Log{
		UserID:  user.ID,
		Title:   "Run",
		Content: "5k",
		Mood:    "happy",
	}
	require.NoError(t, logRepo.Create(logEntry, []string{"fitness", "morning", "fitness"}))
	require.NotZero(t, logEntry.ID)

	logs, err := logRepo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	got := logs[0]
	assert.Equal(t, "Run", got.Title)
	assert.Equal(t, "5k", got.Content)
	assert.Equal(t, "happy", got.Mood)
	assert.False(t, got.Timestamp.IsZero())
	assert.ElementsMatch(t, []string{"fitness", "morning"}, tagNames(got.Tags))
}

func TestCreateWithoutTags(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	user := createTestUser(t, db, "alice")

	require.NoError(t, logRepo.Create(&models.Log{UserID: user.ID, Title: "quiet", Content: "nothing"}, nil))

	logs, err := logRepo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Empty(t, logs[0].Tags)
}

func TestListByUserOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	user := createTestUser(t, db, "alice")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		logEntry := &models.Log{
			UserID:    user.ID,
			Title:     title,
			Content:   "c",
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, logRepo.Create(logEntry, nil))
	}

	logs, err := logRepo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "newest", logs[0].Title)
	assert.Equal(t, "middle", logs[1].Title)
	assert.Equal(t, "oldest", logs[2].Title)
}

func TestListByUserExcludesOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, logRepo.Create(&models.Log{UserID: alice.ID, Title: "mine", Content: "c"}, nil))
	require.NoError(t, logRepo.Create(&models.Log{UserID: bob.ID, Title: "theirs", Content: "c"}, nil))

	logs, err := logRepo.ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "mine", logs[0].Title)
}

func TestSearchMatchesTitleContentAndTags(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	user := createTestUser(t, db, "alice")

	require.NoError(t, logRepo.Create(&models.Log{UserID: user.ID, Title: "work meeting", Content: "notes"}, nil))
	require.NoError(t, logRepo.Create(&models.Log{UserID: user.ID, Title: "dinner", Content: "after work"}, nil))
	require.NoError(t, logRepo.Create(&models.Log{UserID: user.ID, Title: "gym", Content: "legs"}, []string{"workout"}))
	require.NoError(t, logRepo.Create(&models.Log{UserID: user.ID, Title: "reading", Content: "novel"}, []string{"leisure"}))

	logs, err := logRepo.Search(user.ID, "work")
	require.NoError(t, err)
	require.Len(t, logs, 3)

	titles := make([]string, 0, len(logs))
	for _, l := range logs {
		titles = append(titles, l.Title)
	}
	assert.ElementsMatch(t, []string{"work meeting", "dinner", "gym"}, titles)
}

func TestSearchReturnsMultiTagMatchOnce(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	user := createTestUser(t, db, "alice")

	// 2つのタグが両方とも検索語に一致しても、結果には一度だけ現れる
	require.NoError(t, logRepo.Create(&models.Log{UserID: user.ID, Title: "gym", Content: "legs"},
		[]string{"workout", "work-trip"}))

	logs, err := logRepo.Search(user.ID, "work")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.ElementsMatch(t, []string{"workout", "work-trip"}, tagNames(logs[0].Tags))
}

func TestSearchExcludesOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, logRepo.Create(&models.Log{UserID: bob.ID, Title: "work", Content: "c"}, nil))

	logs, err := logRepo.Search(alice.ID, "work")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestUpdateReplacesFieldsAndTags(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	user := createTestUser(t, db, "alice")

	logEntry := &models.Log{UserID: user.ID, Title: "draft", Content: "one", Mood: "meh"}
	require.NoError(t, logRepo.Create(logEntry, []string{"old", "stale"}))

	require.NoError(t, logRepo.Update(logEntry.ID, "final", "two", "", []string{"fresh"}))

	updated, err := logRepo.FindByID(logEntry.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "two", updated.Content)
	assert.Equal(t, "", updated.Mood)
	assert.ElementsMatch(t, []string{"fresh"}, tagNames(updated.Tags))

	// 外れたタグの行は残るが、このログとのリンクは消える
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Where("name IN ?", []string{"old", "stale"}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount)

	var links int64
	require.NoError(t, db.Model(&models.LogTag{}).Where("log_id = ?", logEntry.ID).Count(&links).Error)
	assert.Equal(t, int64(1), links)
}

func TestUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)

	err := logRepo.Update(9999, "t", "c", "", nil)
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestDeleteRemovesLogAndLinks(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)
	user := createTestUser(t, db, "alice")

	logEntry := &models.Log{UserID: user.ID, Title: "bye", Content: "c"}
	require.NoError(t, logRepo.Create(logEntry, []string{"keepme"}))

	require.NoError(t, logRepo.Delete(logEntry.ID))

	_, err := logRepo.FindByID(logEntry.ID)
	assert.ErrorIs(t, err, ErrLogNotFound)

	var links int64
	require.NoError(t, db.Model(&models.LogTag{}).Where("log_id = ?", logEntry.ID).Count(&links).Error)
	assert.Zero(t, links)

	// タグ行は削除されない
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Where("name = ?", "keepme").Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	logRepo, _ := newLogRepos(db)

	err := logRepo.Delete(9999)
	assert.ErrorIs(t, err, ErrLogNotFound)
}
