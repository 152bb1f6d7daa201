package settings

import (
	"io"
	"time"

	"github.com/erp/erp-system/internal/domain/settings"
)

// SettingsResponse is the read model of the system settings
type SettingsResponse struct {
	CompanyName string
	LogoURL     string
	UpdatedAt   time.Time
}

// ToSettingsResponse converts the domain settings to the read model
func ToSettingsResponse(s *settings.SystemSettings) SettingsResponse {
	return SettingsResponse{
		CompanyName: s.CompanyName,
		LogoURL:     s.LogoURL,
		UpdatedAt:   s.UpdatedAt,
	}
}

// LogoUpload is an uploaded logo file
type LogoUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// UploadOptions limits logo uploads
type UploadOptions struct {
	MaxSize int64
	// AllowedTypes lists accepted MIME types
	AllowedTypes []string
}
