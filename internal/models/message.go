package models

// Message is an immutable chat line between two users. Messages are polled,
// not pushed; clients re-fetch conversations.
type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Text       string `gorm:"column:message;not null" json:"message"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
