package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type VideoHandler struct {
	*BaseHandler
	videoService services.VideoService
}

func NewVideoHandler(base *BaseHandler, videoService services.VideoService) *VideoHandler {
	return &VideoHandler{
		BaseHandler:  base,
		videoService: videoService,
	}
}

func (h *VideoHandler) RegisterRoutes(r *gin.RouterGroup) {
	videos := r.Group("/videos")
	{
		videos.GET("", h.List)
		videos.GET("/:id", h.Get)
		videos.POST("", h.Create)
		videos.PUT("/:id", h.Update)
		videos.DELETE("/:id", h.Delete)
	}
}

func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoService.List(c.Request.Context(), h.GetDB(c), c.Query("category"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, videos)
}

func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videoService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, video)
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.CreateVideoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	video, err := h.videoService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, video)
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.UpdateVideoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	video, err := h.videoService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, video)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"id": c.Param("id")})
}
