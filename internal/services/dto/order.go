package dto

import (
	"time"

	"skydraw_backend/internal/models"
)

type CreateOrderRequest struct {
	ArtistID  string  `json:"artist_id" validate:"required"`
	ArtworkID *string `json:"artwork_id,omitempty"`
	Detail    string  `json:"detail" validate:"required,min=10"`
	Price     float64 `json:"price" validate:"required,gt=0,lte=100000"`
}

type CreateOrderResponse struct {
	Message    string  `json:"message"`
	OrderID    string  `json:"orderId"`
	QRCodePath *string `json:"qrCodePath"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=waiting paid working done"`
}

// OrderView is the list projection: the order row plus display names of
// the counterparts, matching what the browser table renders.
type OrderView struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	ArtistID      string             `json:"artist_id"`
	ArtworkID     *string            `json:"artwork_id,omitempty"`
	Detail        string             `json:"detail"`
	Price         float64            `json:"price"`
	Status        models.OrderStatus `json:"status"`
	QRCodePath    *string            `json:"qr_code_path,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	ArtistName    string             `json:"artist_name,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	ArtworkTitle  string             `json:"artwork_title,omitempty"`
	ArtworkImage  string             `json:"artwork_image,omitempty"`
}
