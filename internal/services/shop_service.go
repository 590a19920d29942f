package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/internal/storage"
	"skydraw_backend/pkg/apperrors"
)

type ArtworkUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type ShopService interface {
	// Public surface
	ListApproved() ([]dto.ShopView, error)
	GetDetail(shopID string) (*dto.ShopDetailResponse, error)

	// Artist surface
	Dashboard(artistID string) (*dto.ArtistDashboardResponse, error)
	UpdateShop(artistID string, req *dto.UpdateShopRequest) error
	AddArtwork(artistID string, req *dto.AddArtworkRequest, upload *ArtworkUpload) (*models.Artwork, error)
	DeleteArtwork(artistID, artworkID string) error
}

type ShopServiceConfig struct {
	MaxUploadSize int64
	AllowedTypes  []string
}

type ShopServiceImpl struct {
	shopRepo    repositories.ShopRepository
	artworkRepo repositories.ArtworkRepository
	orderRepo   repositories.OrderRepository
	store       storage.Storage
	cfg         ShopServiceConfig
}

func NewShopService(
	shopRepo repositories.ShopRepository,
	artworkRepo repositories.ArtworkRepository,
	orderRepo repositories.OrderRepository,
	store storage.Storage,
	cfg ShopServiceConfig,
) ShopService {
	return &ShopServiceImpl{
		shopRepo:    shopRepo,
		artworkRepo: artworkRepo,
		orderRepo:   orderRepo,
		store:       store,
		cfg:         cfg,
	}
}

func (s *ShopServiceImpl) ListApproved() ([]dto.ShopView, error) {
	shops, err := s.shopRepo.FindAllApproved()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.ShopView, 0, len(shops))
	for _, shop := range shops {
		views = append(views, buildShopView(&shop))
	}
	return views, nil
}

func (s *ShopServiceImpl) GetDetail(shopID string) (*dto.ShopDetailResponse, error) {
	shop, err := s.shopRepo.FindApprovedByID(shopID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrShopNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	artworks, err := s.artworkRepo.FindByShopID(shop.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ShopDetailResponse{
		Shop:     buildShopView(shop),
		Artworks: artworks,
	}, nil
}

func (s *ShopServiceImpl) Dashboard(artistID string) (*dto.ArtistDashboardResponse, error) {
	shop, err := s.shopRepo.FindByUserID(artistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrShopNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	artworks, err := s.artworkRepo.FindByShopID(shop.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	orders, err := s.orderRepo.FindByArtistID(artistID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ArtistDashboardResponse{
		Shop:     shop,
		Artworks: artworks,
		Orders:   buildOrderViews(orders),
	}, nil
}

func (s *ShopServiceImpl) UpdateShop(artistID string, req *dto.UpdateShopRequest) error {
	shop, err := s.shopRepo.FindByUserID(artistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrShopNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	shop.Name = req.Name
	shop.Bio = req.Bio

	if err := s.shopRepo.Update(shop); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ShopServiceImpl) AddArtwork(artistID string, req *dto.AddArtworkRequest, upload *ArtworkUpload) (*models.Artwork, error) {
	shop, err := s.shopRepo.FindByUserID(artistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrShopNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	imageURL := ""
	if upload != nil {
		imageURL, err = s.storeImage(upload)
		if err != nil {
			return nil, err
		}
	}

	artwork := &models.Artwork{
		ShopID:      shop.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    imageURL,
	}
	if err := s.artworkRepo.Create(artwork); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return artwork, nil
}

// DeleteArtwork only touches artworks belonging to the caller's shop.
func (s *ShopServiceImpl) DeleteArtwork(artistID, artworkID string) error {
	shop, err := s.shopRepo.FindByUserID(artistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrShopNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArtworkNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if artwork.ShopID != shop.ID {
		// Same ambiguity policy as orders: foreign rows read as missing.
		return apperrors.ErrNotFound(repositories.ErrArtworkNotFound)
	}

	if err := s.artworkRepo.Delete(artworkID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ShopServiceImpl) storeImage(upload *ArtworkUpload) (string, error) {
	if upload.Size > s.cfg.MaxUploadSize {
		return "", apperrors.ErrFileTooLarge
	}
	if !s.isAllowedType(upload.ContentType) {
		return "", apperrors.ErrInvalidFileType
	}

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	fileName := "artwork-" + uuid.NewString() + ext

	ctx := context.Background()
	if err := s.store.Save(ctx, fileName, upload.Reader, upload.ContentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, fileName)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *ShopServiceImpl) isAllowedType(contentType string) bool {
	for _, allowed := range s.cfg.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func buildShopView(shop *models.Shop) dto.ShopView {
	view := dto.ShopView{
		ID:           shop.ID,
		UserID:       shop.UserID,
		Name:         shop.Name,
		Bio:          shop.Bio,
		IsApproved:   shop.IsApproved,
		CreatedAt:    shop.CreatedAt,
		ArtworkCount: len(shop.Artworks),
	}
	if shop.Owner != nil {
		view.OwnerName = shop.Owner.Name
		view.OwnerAvatar = shop.Owner.Avatar
		view.OwnerEmail = shop.Owner.Email
	}
	return view
}
