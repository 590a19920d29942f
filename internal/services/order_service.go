package services

import (
	"bytes"
	"context"
	"fmt"

	"skydraw_backend/internal/logger"
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/payments"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/internal/storage"
	"skydraw_backend/pkg/apperrors"
)

type OrderService interface {
	Create(customerID string, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	// UpdateStatus scoped to the acting user: updates touching orders the
	// user is not a party to match zero rows and read as not found.
	UpdateStatus(orderID string, status models.OrderStatus, actingUserID string) error
	ListByCustomer(customerID string) ([]dto.OrderView, error)
	ListByArtist(artistID string) ([]dto.OrderView, error)
	ListAll() ([]dto.OrderView, error)
}

type OrderServiceConfig struct {
	// PromptPayID is the merchant payment target. Empty disables QR
	// generation entirely; orders still succeed with a nil path.
	PromptPayID string
	// EnforceTransitions rejects backward status moves when set.
	EnforceTransitions bool
}

type OrderServiceImpl struct {
	orderRepo     repositories.OrderRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
	qr            payments.QRGenerator
	store         storage.Storage
	cfg           OrderServiceConfig
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	qr payments.QRGenerator,
	store storage.Storage,
	cfg OrderServiceConfig,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		userRepo:      userRepo,
		notifications: notifications,
		qr:            qr,
		store:         store,
		cfg:           cfg,
	}
}

// Create inserts the order, then tries to attach a payment QR image and to
// notify the artist. Both follow-ups are best-effort: the order stands even
// when they fail.
func (s *OrderServiceImpl) Create(customerID string, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if req.ArtistID == customerID {
		return nil, apperrors.ErrSelfOrder
	}

	artist, err := s.userRepo.FindByID(req.ArtistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if artist.Role != models.UserRoleArtist {
		return nil, apperrors.ErrArtistRequired
	}

	order := &models.Order{
		CustomerID: customerID,
		ArtistID:   req.ArtistID,
		ArtworkID:  req.ArtworkID,
		Detail:     req.Detail,
		Price:      req.Price,
		Status:     models.OrderStatusWaiting,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	qrPath := s.attachPaymentQR(order)

	go s.notifications.Notify(order.ArtistID, order.ID, NotificationNewOrder)

	return &dto.CreateOrderResponse{
		Message:    "Order created",
		OrderID:    order.ID,
		QRCodePath: qrPath,
	}, nil
}

// attachPaymentQR renders the PromptPay payload for the order amount,
// stores it as qr-<orderID>.png and persists the public path. Returns nil
// on any failure; the caller treats that as "no QR yet".
func (s *OrderServiceImpl) attachPaymentQR(order *models.Order) *string {
	if s.cfg.PromptPayID == "" {
		return nil
	}

	payload := payments.BuildPayload(s.cfg.PromptPayID, order.Price)
	png, err := s.qr.GeneratePNG(payload)
	if err != nil {
		logger.Warn("QR generation failed, order kept without payment code",
			"order_id", order.ID, "error", err)
		return nil
	}

	ctx := context.Background()
	fileName := fmt.Sprintf("qr-%s.png", order.ID)
	if err := s.store.Save(ctx, fileName, bytes.NewReader(png), "image/png"); err != nil {
		logger.Warn("QR image write failed, order kept without payment code",
			"order_id", order.ID, "error", err)
		return nil
	}

	url, err := s.store.GetURL(ctx, fileName)
	if err != nil {
		logger.Warn("QR URL resolution failed", "order_id", order.ID, "error", err)
		return nil
	}

	if err := s.orderRepo.UpdateQRPath(order.ID, url); err != nil {
		logger.Warn("QR path persist failed, order kept without payment code",
			"order_id", order.ID, "error", err)
		return nil
	}

	order.QRCodePath = &url
	return &url
}

func (s *OrderServiceImpl) UpdateStatus(orderID string, status models.OrderStatus, actingUserID string) error {
	if !models.IsValidOrderStatus(status) {
		return apperrors.ErrInvalidStatus("order", "Unknown order status")
	}

	if s.cfg.EnforceTransitions {
		current, err := s.orderRepo.FindByID(orderID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}
		if !models.IsForwardTransition(current.Status, status) {
			return apperrors.ErrInvalidStatus("order",
				fmt.Sprintf("Cannot move order from %s back to %s", current.Status, status))
		}
	}

	order, err := s.orderRepo.UpdateStatus(orderID, status, actingUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if status == models.OrderStatusPaid {
		go s.notifications.Notify(order.ArtistID, order.ID, NotificationPaymentConfirmed)
	}

	return nil
}

func (s *OrderServiceImpl) ListByCustomer(customerID string) ([]dto.OrderView, error) {
	orders, err := s.orderRepo.FindByCustomerID(customerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildOrderViews(orders), nil
}

func (s *OrderServiceImpl) ListByArtist(artistID string) ([]dto.OrderView, error) {
	orders, err := s.orderRepo.FindByArtistID(artistID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildOrderViews(orders), nil
}

func (s *OrderServiceImpl) ListAll() ([]dto.OrderView, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildOrderViews(orders), nil
}

func buildOrderViews(orders []models.Order) []dto.OrderView {
	views := make([]dto.OrderView, 0, len(orders))
	for _, order := range orders {
		view := dto.OrderView{
			ID:         order.ID,
			CustomerID: order.CustomerID,
			ArtistID:   order.ArtistID,
			ArtworkID:  order.ArtworkID,
			Detail:     order.Detail,
			Price:      order.Price,
			Status:     order.Status,
			QRCodePath: order.QRCodePath,
			CreatedAt:  order.CreatedAt,
		}
		if order.Artist != nil {
			view.ArtistName = order.Artist.Name
		}
		if order.Customer != nil {
			view.CustomerName = order.Customer.Name
			view.CustomerEmail = order.Customer.Email
		}
		if order.Artwork != nil {
			view.ArtworkTitle = order.Artwork.Title
			view.ArtworkImage = order.Artwork.ImageURL
		}
		views = append(views, view)
	}
	return views
}
