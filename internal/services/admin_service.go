package services

import (
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/pkg/apperrors"
)

type AdminService interface {
	Dashboard() (*dto.AdminDashboardResponse, error)
	ApproveShop(shopID string) error
	DeleteShop(shopID string) error
	DeleteUser(actingAdminID, userID string) error
}

type AdminServiceImpl struct {
	userRepo  repositories.UserRepository
	shopRepo  repositories.ShopRepository
	orderRepo repositories.OrderRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	shopRepo repositories.ShopRepository,
	orderRepo repositories.OrderRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:  userRepo,
		shopRepo:  shopRepo,
		orderRepo: orderRepo,
	}
}

func (s *AdminServiceImpl) Dashboard() (*dto.AdminDashboardResponse, error) {
	pending, err := s.shopRepo.FindPending()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingViews := make([]dto.ShopView, 0, len(pending))
	for i := range pending {
		pendingViews = append(pendingViews, buildShopView(&pending[i]))
	}

	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats, err := s.collectStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminDashboardResponse{
		PendingShops: pendingViews,
		Orders:       buildOrderViews(orders),
		Stats:        *stats,
	}, nil
}

// collectStats aggregates marketplace counters. Revenue only counts
// completed orders.
func (s *AdminServiceImpl) collectStats() (*dto.MarketplaceStats, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, err
	}
	customers, err := s.userRepo.CountByRole(models.UserRoleCustomer)
	if err != nil {
		return nil, err
	}
	artists, err := s.userRepo.CountByRole(models.UserRoleArtist)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orderRepo.CountAll()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumRevenueByStatus(models.OrderStatusDone)
	if err != nil {
		return nil, err
	}

	return &dto.MarketplaceStats{
		TotalUsers:   totalUsers,
		Customers:    customers,
		Artists:      artists,
		TotalOrders:  totalOrders,
		TotalRevenue: revenue,
	}, nil
}

func (s *AdminServiceImpl) ApproveShop(shopID string) error {
	if err := s.shopRepo.Approve(shopID); err != nil {
		if apperrors.Is(err, repositories.ErrShopNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteShop(shopID string) error {
	if err := s.shopRepo.Delete(shopID); err != nil {
		if apperrors.Is(err, repositories.ErrShopNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteUser removes a user account with their shop and artworks.
// Admins cannot remove themselves or other admins this way.
func (s *AdminServiceImpl) DeleteUser(actingAdminID, userID string) error {
	if actingAdminID == userID {
		return apperrors.NewBadRequestError("Cannot delete your own account")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if user.Role == models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
