package handler

import (
	"time"

	"github.com/erp/erp-system/internal/application/settings"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateSettingsRequest represents the request body for updating system settings
type UpdateSettingsRequest struct {
	CompanyName string `json:"companyName" binding:"required,max=200"`
}

// SettingsResponse represents the system settings in API responses
type SettingsResponse struct {
	CompanyName string    `json:"companyName"`
	LogoURL     string    `json:"logoUrl"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSettingsResponse(s settings.SettingsResponse) SettingsResponse {
	return SettingsResponse{
		CompanyName: s.CompanyName,
		LogoURL:     s.LogoURL,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SettingsHandler handles system settings HTTP requests
type SettingsHandler struct {
	BaseHandler
	settingsService *settings.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settings.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     BaseHandler{logger: logger},
		settingsService: settingsService,
	}
}

// GetSettings godoc
// @Summary      Get system settings
// @Description  Company name and logo. The record is created with defaults on first read.
// @Tags         system-settings
// @Produce      json
// @Success      200 {object} dto.Response{data=SettingsResponse}
// @Security     BearerAuth
// @Router       /system-settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	st, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toSettingsResponse(*st))
}

// UpdateSettings godoc
// @Summary      Update system settings
// @Tags         system-settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "Settings"
// @Success      200 {object} dto.Response{data=SettingsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /system-settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	st, err := h.settingsService.UpdateCompanyName(c.Request.Context(), req.CompanyName)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toSettingsResponse(*st))
}

// UploadLogo godoc
// @Summary      Upload company logo
// @Description  Accepts JPEG, PNG, GIF or WebP images. The type is detected from the file content.
// @Tags         system-settings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Logo image"
// @Success      200 {object} dto.Response{data=SettingsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /system-settings/logo [post]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "请选择要上传的文件")
		return
	}
	file, err := fh.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	st, err := h.settingsService.UploadLogo(c.Request.Context(), settings.LogoUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Body:     file,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toSettingsResponse(*st))
}

// RemoveLogo godoc
// @Summary      Remove company logo
// @Tags         system-settings
// @Produce      json
// @Success      200 {object} dto.Response{data=SettingsResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /system-settings/logo [delete]
func (h *SettingsHandler) RemoveLogo(c *gin.Context) {
	st, err := h.settingsService.RemoveLogo(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toSettingsResponse(*st))
}
