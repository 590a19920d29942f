package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skydraw_backend/internal/middleware"
	"skydraw_backend/internal/services"
	"skydraw_backend/internal/services/dto"
)

// UserHandler serves the authenticated-user surface: profile, the public
// shop catalog and the message inbox.
type UserHandler struct {
	*BaseHandler
	authService    services.AuthService
	shopService    services.ShopService
	messageService services.MessageService
}

func NewUserHandler(
	base *BaseHandler,
	authService services.AuthService,
	shopService services.ShopService,
	messageService services.MessageService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		authService:    authService,
		shopService:    shopService,
		messageService: messageService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// The shop catalog is public; everything else needs a session.
	public := rg.Group("/user")
	{
		public.GET("/shops", h.ListShops)
		public.GET("/shop/:id", h.ShopDetail)
	}

	user := rg.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", h.Profile)
		user.POST("/message", h.SendMessage)
		user.GET("/messages/:userId", h.ListMessages)
		user.GET("/conversations", h.Conversations)
	}
}

func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListShops(c *gin.Context) {
	shops, err := h.shopService.ListApproved()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

func (h *UserHandler) ShopDetail(c *gin.Context) {
	shopID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.shopService.GetDetail(shopID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *UserHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *UserHandler) ListMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	otherID, ok := RequireParam(c, "userId")
	if !ok {
		return
	}

	messages, err := h.messageService.ListBetween(userID, otherID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *UserHandler) Conversations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	conversations, err := h.messageService.Conversations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}
