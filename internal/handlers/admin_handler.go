package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skydraw_backend/internal/middleware"
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/services"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.PUT("/shop/:id/approve", h.ApproveShop)
		admin.DELETE("/shop/:id", h.DeleteShop)
		admin.DELETE("/user/:id", h.DeleteUser)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.adminService.Dashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *AdminHandler) ApproveShop(c *gin.Context) {
	shopID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.ApproveShop(shopID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop approved"})
}

func (h *AdminHandler) DeleteShop(c *gin.Context) {
	shopID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteShop(shopID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	userID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(adminID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
