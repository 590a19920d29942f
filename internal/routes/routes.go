package routes

import (
	"github.com/gin-gonic/gin"

	"skydraw_backend/internal/handlers"
)

// RegisterRoutes mounts the whole HTTP API under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api)
		appHandlers.ArtistHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}
}
