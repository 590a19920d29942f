package repositories

import (
	"errors"
	"time"

	"skydraw_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	FindByCustomerID(customerID string) ([]models.Order, error)
	FindByArtistID(artistID string) ([]models.Order, error)
	FindAll() ([]models.Order, error)

	// UpdateStatus sets the status of an order. When actingUserID is
	// non-empty the update is scoped to rows where the acting user is the
	// customer or the artist; zero rows matched reads as not found, which
	// deliberately conflates "not yours" with "does not exist".
	UpdateStatus(id string, status models.OrderStatus, actingUserID string) (*models.Order, error)

	UpdateQRPath(id, qrPath string) error

	CountAll() (int64, error)
	SumRevenueByStatus(status models.OrderStatus) (float64, error)
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("Artist").Preload("Artwork").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByCustomerID(customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Artist").Preload("Artwork").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) FindByArtistID(artistID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Customer").Preload("Artwork").
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Customer").Preload("Artist").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) UpdateStatus(id string, status models.OrderStatus, actingUserID string) (*models.Order, error) {
	query := r.db.Model(&models.Order{}).Where("id = ?", id)
	if actingUserID != "" {
		query = query.Where("customer_id = ? OR artist_id = ?", actingUserID, actingUserID)
	}

	result := query.Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}

	return r.FindByID(id)
}

func (r *OrderRepositoryImpl) UpdateQRPath(id, qrPath string) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).
		Update("qr_code_path", qrPath)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepositoryImpl) SumRevenueByStatus(status models.OrderStatus) (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue).Error
	return revenue, err
}
