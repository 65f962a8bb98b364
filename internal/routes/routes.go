package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/handlers"
)

// RegisterRoutes mounts every resource group under /api/v1 plus the
// health probe. The file route is mounted only when local storage is
// active (h.FileHandler non-nil).
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		h.AlbumHandler.RegisterRoutes(api)
		h.VideoHandler.RegisterRoutes(api)
		h.NoticeHandler.RegisterRoutes(api)
		h.ScheduleHandler.RegisterRoutes(api)
		h.MemberHandler.RegisterRoutes(api)
		h.GalleryHandler.RegisterRoutes(api)
		h.SettingsHandler.RegisterRoutes(api)
	}

	if h.FileHandler != nil {
		h.FileHandler.RegisterRoutes(router)
	}
}
