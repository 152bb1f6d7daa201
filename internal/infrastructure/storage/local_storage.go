package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erp/erp-system/internal/domain/settings"
)

// Ensure LocalLogoStorage implements LogoStorage
var _ settings.LogoStorage = (*LocalLogoStorage)(nil)

// LocalLogoStorage writes logos into a directory that the HTTP server
// exposes under publicPath
type LocalLogoStorage struct {
	dir        string
	publicPath string
}

// NewLocalLogoStorage creates the directory if needed
func NewLocalLogoStorage(dir, publicPath string) (*LocalLogoStorage, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	publicPath = "/" + strings.Trim(publicPath, "/")
	return &LocalLogoStorage{dir: dir, publicPath: publicPath}, nil
}

// Dir returns the directory files are written to
func (s *LocalLogoStorage) Dir() string {
	return s.dir
}

// PublicPath returns the URL prefix files are served under
func (s *LocalLogoStorage) PublicPath() string {
	return s.publicPath
}

// Put writes the file and returns its URL path
func (s *LocalLogoStorage) Put(_ context.Context, name, _ string, body io.Reader, size int64) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", errors.New("invalid file name")
	}

	target := filepath.Join(s.dir, name)
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	written, copyErr := io.Copy(f, io.LimitReader(body, size+1))
	closeErr := f.Close()
	if copyErr == nil && written != size {
		copyErr = fmt.Errorf("upload size mismatch: got %d bytes, want %d", written, size)
	}
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(target)
		if copyErr != nil {
			return "", fmt.Errorf("failed to write file: %w", copyErr)
		}
		return "", fmt.Errorf("failed to write file: %w", closeErr)
	}

	return s.publicPath + "/" + name, nil
}

// Delete removes the file behind url. URLs not under publicPath are ignored,
// as is a file that is already gone.
func (s *LocalLogoStorage) Delete(_ context.Context, url string) error {
	name, found := strings.CutPrefix(url, s.publicPath+"/")
	if !found || name == "" || name != filepath.Base(name) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
