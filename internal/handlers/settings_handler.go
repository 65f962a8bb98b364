package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type SettingsHandler struct {
	*BaseHandler
	settingsService services.SettingsService
}

func NewSettingsHandler(base *BaseHandler, settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     base,
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) RegisterRoutes(r *gin.RouterGroup) {
	settings := r.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
	}
}

// Get returns the site settings, falling back to defaults before the
// singleton row has been written.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context(), h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !h.BindAndValidatePayload(c, &req) {
		return
	}
	file, ok := h.FileUpload(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), h.GetDB(c), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, settings)
}
