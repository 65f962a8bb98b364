package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type AlbumHandler struct {
	*BaseHandler
	albumService services.AlbumService
}

func NewAlbumHandler(base *BaseHandler, albumService services.AlbumService) *AlbumHandler {
	return &AlbumHandler{
		BaseHandler:  base,
		albumService: albumService,
	}
}

func (h *AlbumHandler) RegisterRoutes(r *gin.RouterGroup) {
	albums := r.Group("/albums")
	{
		albums.GET("", h.List)
		albums.GET("/:id", h.Get)
		albums.POST("", h.Create)
		albums.PUT("/:id", h.Update)
		albums.DELETE("/:id", h.Delete)
	}
}

func (h *AlbumHandler) List(c *gin.Context) {
	albums, err := h.albumService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, albums)
}

func (h *AlbumHandler) Get(c *gin.Context) {
	album, err := h.albumService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, album)
}

// Create accepts multipart form data: JSON metadata in the "payload"
// field, the cover image (optional) in the "image" field.
func (h *AlbumHandler) Create(c *gin.Context) {
	var req dto.CreateAlbumRequest
	if !h.BindAndValidatePayload(c, &req) {
		return
	}
	file, ok := h.FileUpload(c)
	if !ok {
		return
	}

	album, err := h.albumService.Create(c.Request.Context(), h.GetDB(c), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, album)
}

func (h *AlbumHandler) Update(c *gin.Context) {
	var req dto.UpdateAlbumRequest
	if !h.BindAndValidatePayload(c, &req) {
		return
	}
	file, ok := h.FileUpload(c)
	if !ok {
		return
	}

	album, err := h.albumService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, album)
}

func (h *AlbumHandler) Delete(c *gin.Context) {
	if err := h.albumService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"id": c.Param("id")})
}
