package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type GalleryHandler struct {
	*BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base *BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) RegisterRoutes(r *gin.RouterGroup) {
	gallery := r.Group("/gallery")
	{
		gallery.GET("", h.List)
		gallery.GET("/:id", h.Get)
		gallery.POST("", h.Create)
		gallery.PUT("/:id", h.Update)
		gallery.DELETE("/:id", h.Delete)
		gallery.POST("/batch-delete", h.BatchDelete)
	}
}

func (h *GalleryHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			apperrors.HandleError(c, apperrors.NewBadRequestError("'limit' must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	items, err := h.galleryService.List(c.Request.Context(), h.GetDB(c), limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, items)
}

func (h *GalleryHandler) Get(c *gin.Context) {
	item, err := h.galleryService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, item)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.CreateGalleryItemRequest
	if !h.BindAndValidatePayload(c, &req) {
		return
	}
	file, ok := h.FileUpload(c)
	if !ok {
		return
	}

	item, err := h.galleryService.Create(c.Request.Context(), h.GetDB(c), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var req dto.UpdateGalleryItemRequest
	if !h.BindAndValidatePayload(c, &req) {
		return
	}
	file, ok := h.FileUpload(c)
	if !ok {
		return
	}

	item, err := h.galleryService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.galleryService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"id": c.Param("id")})
}

// BatchDelete removes several items in one call. Partial success is the
// expected outcome: the response lists the ids that were actually removed.
func (h *GalleryHandler) BatchDelete(c *gin.Context) {
	var req dto.BatchDeleteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	deleted := h.galleryService.DeleteMany(c.Request.Context(), h.GetDB(c), req.IDs)
	h.OK(c, dto.BatchDeleteResponse{Deleted: deleted})
}
