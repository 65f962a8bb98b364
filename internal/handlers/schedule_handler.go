package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type ScheduleHandler struct {
	*BaseHandler
	scheduleService services.ScheduleService
}

func NewScheduleHandler(base *BaseHandler, scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		BaseHandler:     base,
		scheduleService: scheduleService,
	}
}

func (h *ScheduleHandler) RegisterRoutes(r *gin.RouterGroup) {
	schedules := r.Group("/schedules")
	{
		schedules.GET("", h.List)
		schedules.GET("/:id", h.Get)
		schedules.POST("", h.Create)
		schedules.PUT("/:id", h.Update)
		schedules.DELETE("/:id", h.Delete)
	}
}

// List supports ?month=YYYY-MM for calendar views.
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.scheduleService.List(c.Request.Context(), h.GetDB(c), c.Query("month"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, schedules)
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.scheduleService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, schedule)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, schedule)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, schedule)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.scheduleService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"id": c.Param("id")})
}
