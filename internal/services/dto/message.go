package dto

import "time"

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

type MessageView struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	ReceiverID   string    `json:"receiver_id"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
	SenderName   string    `json:"sender_name"`
	ReceiverName string    `json:"receiver_name"`
}

// ConversationView is the inbox row: the counterpart plus the most recent
// message exchanged with them.
type ConversationView struct {
	OtherUserID     string    `json:"other_user_id"`
	OtherUserName   string    `json:"other_user_name"`
	OtherUserAvatar string    `json:"other_user_avatar,omitempty"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
}
