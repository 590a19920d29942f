package repositories

import (
	"errors"

	"skydraw_backend/internal/models"

	"gorm.io/gorm"
)

var ErrArtworkNotFound = errors.New("artwork not found")

type ArtworkRepository interface {
	FindByID(id string) (*models.Artwork, error)
	FindByShopID(shopID string) ([]models.Artwork, error)
	Create(artwork *models.Artwork) error
	Delete(id string) error
}

type ArtworkRepositoryImpl struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &ArtworkRepositoryImpl{db: db}
}

func (r *ArtworkRepositoryImpl) FindByID(id string) (*models.Artwork, error) {
	var artwork models.Artwork
	err := r.db.First(&artwork, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	return &artwork, nil
}

func (r *ArtworkRepositoryImpl) FindByShopID(shopID string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.db.Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&artworks).Error
	return artworks, err
}

func (r *ArtworkRepositoryImpl) Create(artwork *models.Artwork) error {
	return r.db.Create(artwork).Error
}

func (r *ArtworkRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Artwork{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtworkNotFound
	}
	return nil
}
