package repositories

import (
	"skydraw_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	// FindBetweenUsers returns the full exchange between two users,
	// oldest first, regardless of direction.
	FindBetweenUsers(userID1, userID2 string) ([]models.Message, error)
	// FindByUser returns every message the user sent or received,
	// newest first. Used to derive the conversation list.
	FindByUser(userID string) ([]models.Message, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindBetweenUsers(userID1, userID2 string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Sender").Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID1, userID2, userID2, userID1).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindByUser(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}
