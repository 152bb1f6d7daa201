package settings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/erp/erp-system/internal/domain/settings"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload errors
var (
	ErrEmptyFile       = shared.NewDomainError("INVALID_FILE", "请选择要上传的文件")
	ErrFileTooLarge    = shared.NewDomainError("FILE_TOO_LARGE", "文件大小不能超过5MB")
	ErrUnsupportedType = shared.NewDomainError("INVALID_FILE_TYPE", "只支持 JPG、PNG、GIF、WEBP 格式的图片")
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// SettingsService manages the company name and logo
type SettingsService struct {
	repo    settings.Repository
	storage settings.LogoStorage
	maxSize int64
	allowed map[string]struct{}
	now     func() time.Time
	logger  *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo settings.Repository, storage settings.LogoStorage, opts UploadOptions, logger *zap.Logger) *SettingsService {
	s := &SettingsService{
		repo:    repo,
		storage: storage,
		maxSize: opts.MaxSize,
		allowed: make(map[string]struct{}, len(opts.AllowedTypes)),
		now:     time.Now,
		logger:  logger,
	}
	if s.maxSize <= 0 {
		s.maxSize = 5 << 20
	}
	types := opts.AllowedTypes
	if len(types) == 0 {
		types = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	}
	for _, t := range types {
		s.allowed[strings.ToLower(t)] = struct{}{}
	}
	return s
}

// Get returns the settings, creating the default record on first read
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	st, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := ToSettingsResponse(st)
	return &resp, nil
}

// UpdateCompanyName renames the company
func (s *SettingsService) UpdateCompanyName(ctx context.Context, companyName string) (*SettingsResponse, error) {
	st, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.Rename(companyName); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	s.logger.Info("Company name updated", zap.String("company_name", st.CompanyName))
	resp := ToSettingsResponse(st)
	return &resp, nil
}

// UploadLogo stores a new logo and points the settings at it. The type is
// taken from the file content, not from the client. The previous logo is
// removed on a best-effort basis.
func (s *SettingsService) UploadLogo(ctx context.Context, upload LogoUpload) (*SettingsResponse, error) {
	if upload.Body == nil || upload.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if upload.Size > s.maxSize {
		return nil, ErrFileTooLarge
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(upload.Body, head)
	switch {
	case errors.Is(err, io.EOF):
		return nil, ErrEmptyFile
	case err != nil && !errors.Is(err, io.ErrUnexpectedEOF):
		return nil, err
	}
	head = head[:n]
	contentType := http.DetectContentType(head)
	ext, ok := extensions[contentType]
	if _, allowed := s.allowed[contentType]; !ok || !allowed {
		return nil, ErrUnsupportedType
	}

	st, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12], ext)
	url, err := s.storage.Put(ctx, name, contentType, io.MultiReader(bytes.NewReader(head), upload.Body), upload.Size)
	if err != nil {
		s.logger.Error("Failed to store logo", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	previous := st.LogoURL
	st.SetLogo(url)
	if err := s.repo.Save(ctx, st); err != nil {
		s.removeObject(ctx, url)
		return nil, err
	}
	if previous != "" && previous != url {
		s.removeObject(ctx, previous)
	}

	s.logger.Info("Logo uploaded", zap.String("url", url), zap.Int64("size", upload.Size))
	resp := ToSettingsResponse(st)
	return &resp, nil
}

// RemoveLogo clears the logo and deletes the stored file on a best-effort basis
func (s *SettingsService) RemoveLogo(ctx context.Context) (*SettingsResponse, error) {
	st, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	previous := st.LogoURL
	st.ClearLogo()
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	if previous != "" {
		s.removeObject(ctx, previous)
	}
	resp := ToSettingsResponse(st)
	return &resp, nil
}

func (s *SettingsService) removeObject(ctx context.Context, url string) {
	if err := s.storage.Delete(ctx, url); err != nil {
		s.logger.Warn("Failed to delete logo file", zap.String("url", url), zap.Error(err))
	}
}
