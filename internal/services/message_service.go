package services

import (
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/pkg/apperrors"
)

type MessageService interface {
	Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageView, error)
	ListBetween(userID, otherUserID string) ([]dto.MessageView, error)
	// Conversations collapses the user's message history into one row per
	// counterpart, most recent exchange first.
	Conversations(userID string) ([]dto.ConversationView, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *MessageServiceImpl) Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageView, error) {
	if req.ReceiverID == senderID {
		return nil, apperrors.NewBadRequestError("Cannot message yourself")
	}

	if _, err := s.userRepo.FindByID(req.ReceiverID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Text:       req.Message,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := buildMessageView(message)
	return &view, nil
}

func (s *MessageServiceImpl) ListBetween(userID, otherUserID string) ([]dto.MessageView, error) {
	messages, err := s.messageRepo.FindBetweenUsers(userID, otherUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.MessageView, 0, len(messages))
	for i := range messages {
		views = append(views, buildMessageView(&messages[i]))
	}
	return views, nil
}

func (s *MessageServiceImpl) Conversations(userID string) ([]dto.ConversationView, error) {
	messages, err := s.messageRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Messages arrive newest first, so the first message seen per
	// counterpart is the latest one.
	seen := make(map[string]bool)
	conversations := make([]dto.ConversationView, 0)
	for i := range messages {
		msg := &messages[i]

		otherID := msg.ReceiverID
		other := msg.Receiver
		if msg.SenderID != userID {
			otherID = msg.SenderID
			other = msg.Sender
		}
		if seen[otherID] {
			continue
		}
		seen[otherID] = true

		conv := dto.ConversationView{
			OtherUserID:     otherID,
			LastMessage:     msg.Text,
			LastMessageTime: msg.CreatedAt,
		}
		if other != nil {
			conv.OtherUserName = other.Name
			conv.OtherUserAvatar = other.Avatar
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

func buildMessageView(msg *models.Message) dto.MessageView {
	view := dto.MessageView{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Message:    msg.Text,
		CreatedAt:  msg.CreatedAt,
	}
	if msg.Sender != nil {
		view.SenderName = msg.Sender.Name
	}
	if msg.Receiver != nil {
		view.ReceiverName = msg.Receiver.Name
	}
	return view
}
