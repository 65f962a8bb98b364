package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

// FileHandler serves uploaded objects when storage is local; bucket-backed
// deployments serve straight from the bucket URL instead.
type FileHandler struct {
	*BaseHandler
	local *storage.LocalStorage
}

func NewFileHandler(base *BaseHandler, local *storage.LocalStorage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		local:       local,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("path"), "/")

	// Reject traversal out of the storage root.
	clean := filepath.Clean(rel)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	full := filepath.Join(h.local.BasePath(), clean)
	if ok, err := h.local.Exists(c.Request.Context(), clean); err != nil || !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(full)
}
