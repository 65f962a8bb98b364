package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hansols27/QWER-Back-end/database"
	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseKSTDate(s)
	require.NoError(t, err)
	return d
}

func TestFindByID_MissWrapsSharedSentinel(t *testing.T) {
	db := newTestDB(t)

	_, err := NewAlbumRepository().FindByID(db, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrAlbumNotFound)

	_, err = NewVideoRepository().FindByID(db, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestSave_UpsertsOnExistingID(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoticeRepository()

	notice := &models.Notice{Title: "v1", Content: "body"}
	require.NoError(t, repo.Save(db, notice))
	require.NotEmpty(t, notice.ID)

	replacement := &models.Notice{
		BaseModel: models.BaseModel{ID: notice.ID},
		Title:     "v2",
		Content:   "updated body",
	}
	require.NoError(t, repo.Save(db, replacement))

	got, err := repo.FindByID(db, notice.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)

	all, err := repo.List(db)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNoticeList_PinnedFirstThenNewest(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoticeRepository()

	old := &models.Notice{Title: "old", Content: "x"}
	require.NoError(t, repo.Save(db, old))
	pinned := &models.Notice{Title: "pinned", Content: "x", Pinned: true}
	require.NoError(t, repo.Save(db, pinned))
	recent := &models.Notice{Title: "recent", Content: "x"}
	require.NoError(t, repo.Save(db, recent))

	// created_at resolution in sqlite is coarse; force a visible ordering.
	require.NoError(t, db.Model(old).Update("created_at", time.Now().Add(-2*time.Hour)).Error)
	require.NoError(t, db.Model(recent).Update("created_at", time.Now().Add(-1*time.Hour)).Error)
	require.NoError(t, db.Model(pinned).Update("created_at", time.Now().Add(-3*time.Hour)).Error)

	all, err := repo.List(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "pinned", all[0].Title, "pinned notices lead even when older")
	assert.Equal(t, "recent", all[1].Title)
	assert.Equal(t, "old", all[2].Title)
}

func TestVideoList_FiltersByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository()

	for _, v := range []models.Video{
		{Title: "MV", URL: "https://youtu.be/a", Category: "mv"},
		{Title: "Stage", URL: "https://youtu.be/b", Category: "stage"},
		{Title: "MV 2", URL: "https://youtu.be/c", Category: "mv"},
	} {
		video := v
		require.NoError(t, repo.Save(db, &video))
	}

	mvs, err := repo.List(db, "mv")
	require.NoError(t, err)
	assert.Len(t, mvs, 2)

	all, err := repo.List(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestScheduleListBetween_HalfOpenRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepository()

	for _, s := range []struct{ title, date string }{
		{"last of march", "2024-03-31"},
		{"first of april", "2024-04-01"},
		{"mid april", "2024-04-15"},
	} {
		entry := &models.Schedule{Title: s.title, Date: mustDate(t, s.date)}
		require.NoError(t, repo.Save(db, entry))
	}

	from, to, err := utils.MonthRange("2024-04")
	require.NoError(t, err)

	april, err := repo.ListBetween(db, from, to)
	require.NoError(t, err)
	require.Len(t, april, 2)
	assert.Equal(t, "first of april", april[0].Title)
	assert.Equal(t, "mid april", april[1].Title)
}

func TestMemberList_SortOrderWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository()

	for _, m := range []models.MemberProfile{
		{Name: "Siyeon", Position: "bass", SortOrder: 3},
		{Name: "Chodan", Position: "drums", SortOrder: 1},
		{Name: "Magenta", Position: "bass", SortOrder: 2},
	} {
		member := m
		require.NoError(t, repo.Save(db, &member))
	}

	members, err := repo.List(db)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Chodan", members[0].Name)
	assert.Equal(t, "Magenta", members[1].Name)
	assert.Equal(t, "Siyeon", members[2].Name)
}

func TestSettings_SingletonKeyedRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository()

	_, err := repo.Find(db)
	require.ErrorIs(t, err, ErrNotFound)

	settings := models.DefaultSiteSettings()
	settings.SiteTitle = "QWER Official"
	require.NoError(t, repo.Save(db, settings))

	got, err := repo.Find(db)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, got.ID)
	assert.Equal(t, "QWER Official", got.SiteTitle)

	affected, err := repo.Delete(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDelete_ReportsRowsAffected(t *testing.T) {
	db := newTestDB(t)
	repo := NewGalleryRepository()

	item := &models.GalleryItem{Title: "photo"}
	require.NoError(t, repo.Save(db, item))

	affected, err := repo.Delete(db, item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(db, item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
