package dto

import (
	"time"

	"skydraw_backend/internal/models"
)

type ShopView struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
	OwnerName    string    `json:"owner_name"`
	OwnerAvatar  string    `json:"owner_avatar,omitempty"`
	OwnerEmail   string    `json:"owner_email,omitempty"`
	ArtworkCount int       `json:"artwork_count"`
}

type ShopDetailResponse struct {
	Shop     ShopView         `json:"shop"`
	Artworks []models.Artwork `json:"artworks"`
}

type UpdateShopRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	Bio  string `json:"bio"`
}

type AddArtworkRequest struct {
	Title       string  `form:"title" validate:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" validate:"required,gt=0"`
}

type ArtistDashboardResponse struct {
	Shop     *models.Shop     `json:"shop"`
	Artworks []models.Artwork `json:"artworks"`
	Orders   []OrderView      `json:"orders"`
}
