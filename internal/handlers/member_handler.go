package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type MemberHandler struct {
	*BaseHandler
	memberService services.MemberService
}

func NewMemberHandler(base *BaseHandler, memberService services.MemberService) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   base,
		memberService: memberService,
	}
}

func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/members")
	{
		members.GET("", h.List)
		members.GET("/:id", h.Get)
		members.POST("", h.Create)
		members.PUT("/:id", h.Update)
		members.DELETE("/:id", h.Delete)
	}
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, members)
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if !h.BindAndValidatePayload(c, &req) {
		return
	}
	file, ok := h.FileUpload(c)
	if !ok {
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), h.GetDB(c), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if !h.BindAndValidatePayload(c, &req) {
		return
	}
	file, ok := h.FileUpload(c)
	if !ok {
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"id": c.Param("id")})
}
