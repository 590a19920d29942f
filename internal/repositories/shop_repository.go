package repositories

import (
	"errors"

	"skydraw_backend/internal/models"

	"gorm.io/gorm"
)

var ErrShopNotFound = errors.New("shop not found")

type ShopRepository interface {
	FindByID(id string) (*models.Shop, error)
	FindApprovedByID(id string) (*models.Shop, error)
	FindByUserID(userID string) (*models.Shop, error)
	FindAllApproved() ([]models.Shop, error)
	FindPending() ([]models.Shop, error)
	Create(shop *models.Shop) error
	Update(shop *models.Shop) error
	Approve(id string) error
	Delete(id string) error
}

type ShopRepositoryImpl struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &ShopRepositoryImpl{db: db}
}

func (r *ShopRepositoryImpl) FindByID(id string) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.Preload("Owner").First(&shop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// FindApprovedByID is the public shop-detail lookup: an unapproved shop is
// indistinguishable from a missing one.
func (r *ShopRepositoryImpl) FindApprovedByID(id string) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.Preload("Owner").
		First(&shop, "id = ? AND is_approved = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepositoryImpl) FindByUserID(userID string) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.First(&shop, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepositoryImpl) FindAllApproved() ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.Preload("Owner").Preload("Artworks").
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&shops).Error
	return shops, err
}

func (r *ShopRepositoryImpl) FindPending() ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.Preload("Owner").
		Where("is_approved = ?", false).
		Order("created_at DESC").
		Find(&shops).Error
	return shops, err
}

func (r *ShopRepositoryImpl) Create(shop *models.Shop) error {
	return r.db.Create(shop).Error
}

func (r *ShopRepositoryImpl) Update(shop *models.Shop) error {
	result := r.db.Model(shop).Updates(map[string]interface{}{
		"name": shop.Name,
		"bio":  shop.Bio,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShopNotFound
	}
	return nil
}

func (r *ShopRepositoryImpl) Approve(id string) error {
	result := r.db.Model(&models.Shop{}).Where("id = ?", id).
		Update("is_approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShopNotFound
	}
	return nil
}

// Delete removes the shop and cascades to its artworks.
func (r *ShopRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shop_id = ?", id).Delete(&models.Artwork{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Shop{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrShopNotFound
		}
		return nil
	})
}
