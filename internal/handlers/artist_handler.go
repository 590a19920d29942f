package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skydraw_backend/internal/middleware"
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/services"
	"skydraw_backend/internal/services/dto"
)

type ArtistHandler struct {
	*BaseHandler
	shopService  services.ShopService
	orderService services.OrderService
}

func NewArtistHandler(
	base *BaseHandler,
	shopService services.ShopService,
	orderService services.OrderService,
) *ArtistHandler {
	return &ArtistHandler{
		BaseHandler:  base,
		shopService:  shopService,
		orderService: orderService,
	}
}

func (h *ArtistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	artist := rg.Group("/artist")
	artist.Use(middleware.AuthMiddleware())
	artist.Use(middleware.RequireRoles(models.UserRoleArtist))
	{
		artist.GET("/dashboard", h.Dashboard)
		artist.PUT("/shop", h.UpdateShop)
		artist.POST("/artwork", h.AddArtwork)
		artist.DELETE("/artwork/:id", h.DeleteArtwork)
		artist.PUT("/order/:id/status", h.UpdateOrderStatus)
	}
}

func (h *ArtistHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.shopService.Dashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *ArtistHandler) UpdateShop(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateShopRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.shopService.UpdateShop(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop updated"})
}

// AddArtwork takes a multipart form: title, description, price and an
// optional image file.
func (h *ArtistHandler) AddArtwork(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddArtworkRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	var upload *services.ArtworkUpload
	fileHeader, err := c.FormFile("image")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		defer file.Close()

		upload = &services.ArtworkUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		}
	}

	artwork, err := h.shopService.AddArtwork(userID, &req, upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// UpdateOrderStatus moves one of the artist's orders. The ownership scope
// in the service makes foreign orders read as missing.
func (h *ArtistHandler) UpdateOrderStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.orderService.UpdateStatus(orderID, req.Status, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

func (h *ArtistHandler) DeleteArtwork(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	artworkID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.shopService.DeleteArtwork(userID, artworkID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted"})
}
