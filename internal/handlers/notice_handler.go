package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type NoticeHandler struct {
	*BaseHandler
	noticeService services.NoticeService
}

func NewNoticeHandler(base *BaseHandler, noticeService services.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		BaseHandler:   base,
		noticeService: noticeService,
	}
}

func (h *NoticeHandler) RegisterRoutes(r *gin.RouterGroup) {
	notices := r.Group("/notices")
	{
		notices.GET("", h.List)
		notices.GET("/:id", h.Get)
		notices.POST("", h.Create)
		notices.PUT("/:id", h.Update)
		notices.DELETE("/:id", h.Delete)
	}
}

func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.noticeService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, notices)
}

func (h *NoticeHandler) Get(c *gin.Context) {
	notice, err := h.noticeService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, notice)
}

func (h *NoticeHandler) Create(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	notice, err := h.noticeService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, notice)
}

func (h *NoticeHandler) Update(c *gin.Context) {
	var req dto.UpdateNoticeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	notice, err := h.noticeService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, notice)
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	if err := h.noticeService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"id": c.Param("id")})
}
