package services

import (
	"skydraw_backend/internal/email"
	"skydraw_backend/internal/logger"
	"skydraw_backend/internal/repositories"
)

type NotificationKind string

const (
	NotificationNewOrder         NotificationKind = "new_order"
	NotificationPaymentConfirmed NotificationKind = "payment_confirmed"
)

// NotificationService dispatches order mail to artists. Entirely
// best-effort: failures are logged and swallowed, callers never see them.
type NotificationService interface {
	Notify(userID, orderID string, kind NotificationKind)
}

type NotificationServiceImpl struct {
	userRepo repositories.UserRepository
	provider email.Provider
}

func NewNotificationService(
	userRepo repositories.UserRepository,
	provider email.Provider,
) NotificationService {
	return &NotificationServiceImpl{
		userRepo: userRepo,
		provider: provider,
	}
}

func (s *NotificationServiceImpl) Notify(userID, orderID string, kind NotificationKind) {
	if s.provider == nil {
		return
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		logger.Warn("notification skipped: recipient lookup failed",
			"user_id", userID, "order_id", orderID, "error", err)
		return
	}

	var subject, body string
	switch kind {
	case NotificationNewOrder:
		subject, body = email.NewOrderMail(user.Name, orderID)
	case NotificationPaymentConfirmed:
		subject, body = email.PaymentConfirmedMail(user.Name, orderID)
	default:
		logger.Warn("notification skipped: unknown kind", "kind", string(kind))
		return
	}

	if err := s.provider.Send(user.Email, subject, body); err != nil {
		logger.Warn("notification dispatch failed",
			"user_id", userID, "order_id", orderID, "kind", string(kind), "error", err)
	}
}
