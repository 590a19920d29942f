package services

import (
	"fmt"

	"skydraw_backend/internal/auth"
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	shopRepo repositories.ShopRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	shopRepo repositories.ShopRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		shopRepo: shopRepo,
	}
}

// Register creates the user and, for artists, provisions their shop in
// the unapproved state.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Role != models.UserRoleCustomer && req.Role != models.UserRoleArtist {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Role == models.UserRoleArtist {
		shop := &models.Shop{
			UserID:     user.ID,
			Name:       fmt.Sprintf("%s's Art Shop", req.Name),
			Bio:        "Welcome to our shop",
			IsApproved: false,
		}
		if err := s.shopRepo.Create(shop); err != nil {
			// Registration without a shop is unusable for an artist.
			s.userRepo.Delete(user.ID)
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.RegisterResponse{
		Message: "Registration successful",
		UserID:  user.ID,
	}, nil
}

// Login checks credentials and issues an access token. Unknown email and
// wrong password produce the same error.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: &dto.UserResponse{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Avatar: user.Avatar,
		},
	}, nil
}

func (s *AuthServiceImpl) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
