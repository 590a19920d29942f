package services

import (
	"skydraw_backend/internal/email"
)

// ServiceContainer holds every service the application wires up.
type ServiceContainer struct {
	AuthService         AuthService
	OrderService        OrderService
	ShopService         ShopService
	MessageService      MessageService
	AdminService        AdminService
	NotificationService NotificationService
	EmailProvider       email.Provider
}
