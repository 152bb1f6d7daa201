// Package settings holds the single system-wide settings record.
package settings

import (
	"context"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erp/erp-system/internal/domain/shared"
)

// DefaultCompanyName is used when the settings record is first created
const DefaultCompanyName = "我的公司"

// SystemSettings is a singleton; exactly one row exists once it has been read
type SystemSettings struct {
	ID          uint
	CompanyName string
	LogoURL     string
	UpdatedAt   time.Time
}

// NewDefault returns the settings a fresh installation starts with
func NewDefault() *SystemSettings {
	return &SystemSettings{
		CompanyName: DefaultCompanyName,
		UpdatedAt:   time.Now(),
	}
}

// Rename sets the company name
func (s *SystemSettings) Rename(companyName string) error {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "公司名称不能为空")
	}
	if utf8.RuneCountInString(companyName) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "公司名称不能超过200个字符")
	}
	s.CompanyName = companyName
	s.UpdatedAt = time.Now()
	return nil
}

// SetLogo records the public URL of the logo
func (s *SystemSettings) SetLogo(url string) {
	s.LogoURL = url
	s.UpdatedAt = time.Now()
}

// ClearLogo removes the logo reference
func (s *SystemSettings) ClearLogo() {
	s.LogoURL = ""
	s.UpdatedAt = time.Now()
}

// Repository persists the singleton
type Repository interface {
	// Get returns the settings, creating the default record if none exists
	Get(ctx context.Context) (*SystemSettings, error)
	Save(ctx context.Context, s *SystemSettings) error
}

// LogoStorage stores logo files and returns the URL they are served from
type LogoStorage interface {
	Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (url string, err error)
	// Delete removes the object behind url; unknown URLs are ignored
	Delete(ctx context.Context, url string) error
}
