package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/logger"
	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/validator"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
	"github.com/hansols27/QWER-Back-end/pkg/contextkeys"
)

// PayloadField is the multipart form field carrying JSON metadata on
// image-bearing writes; ImageField carries the binary part.
const (
	PayloadField = "payload"
	ImageField   = "image"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB extracts the request-scoped *gorm.DB (pool or transaction) that
// DBMiddleware placed in the gin context.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}
	return db
}

// BindAndValidateJSON binds a JSON body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to bind JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidatePayload decodes the JSON metadata field of a multipart
// write and runs struct validation. A missing field decodes as an empty
// object so image-only updates stay legal.
func (h *BaseHandler) BindAndValidatePayload(c *gin.Context, obj interface{}) bool {
	payload := c.PostForm(PayloadField)
	if payload == "" {
		payload = "{}"
	}
	if err := json.Unmarshal([]byte(payload), obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to decode payload field", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid JSON in 'payload' field: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		logger.CtxWarn(c.Request.Context(), "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
	} else {
		logger.CtxWithError(c.Request.Context(), "internal validator error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

// FileUpload extracts the optional image part. ok=false means the
// request was malformed and a response has been written.
func (h *BaseHandler) FileUpload(c *gin.Context) (*services.FileUpload, bool) {
	fh, err := c.FormFile(ImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, true
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file upload: "+err.Error()))
		return nil, false
	}

	return &services.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}, true
}

// --- success envelope ---

type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, successResponse{Success: true, Data: data})
}

func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponse{Success: true, Data: data})
}
