package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

var ErrAlbumNotFound = fmt.Errorf("album %w", ErrNotFound)

type AlbumRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Album, error)
	List(db *gorm.DB) ([]models.Album, error)
	Save(db *gorm.DB, album *models.Album) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type AlbumRepositoryImpl struct{}

func NewAlbumRepository() AlbumRepository {
	return &AlbumRepositoryImpl{}
}

func (r *AlbumRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Album, error) {
	var album models.Album
	if err := db.First(&album, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, ErrAlbumNotFound)
	}
	return &album, nil
}

func (r *AlbumRepositoryImpl) List(db *gorm.DB) ([]models.Album, error) {
	var albums []models.Album
	err := db.Order("release_date DESC, created_at DESC").Find(&albums).Error
	return albums, err
}

// Save inserts or, when the id already exists, fully replaces the row.
// The caller supplies the merged record, so replaced columns carry the
// values loaded before the merge.
func (r *AlbumRepositoryImpl) Save(db *gorm.DB, album *models.Album) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(album).Error
}

func (r *AlbumRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	res := db.Delete(&models.Album{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
