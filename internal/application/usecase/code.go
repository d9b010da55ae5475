// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tesso57/qrgen/internal/domain/qr"
)

// DownloadFilename is the name every exported image is saved under.
const DownloadFilename = "qrcode.png"

// ErrNothingToExport is returned when an export runs without a render request.
var ErrNothingToExport = errors.New("nothing to export")

// Drawer abstracts the QR encoder.
type Drawer interface {
	Bitmap(content string) ([][]bool, error)
	PNG(content string, style qr.Style) ([]byte, error)
}

// FileSaver abstracts where exported files go.
type FileSaver interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// CodeService renders and exports QR codes.
type CodeService struct {
	Drawer Drawer
	Saver  FileSaver
}

// NewCodeService constructs a CodeService.
func NewCodeService(drawer Drawer, saver FileSaver) *CodeService {
	return &CodeService{Drawer: drawer, Saver: saver}
}

// Render returns the module matrix for a request.
func (s *CodeService) Render(req qr.Request) ([][]bool, error) {
	if req.Empty() {
		return nil, nil
	}
	return s.Drawer.Bitmap(req.Content)
}

// Download rasterizes the request at style.Size and saves it as DownloadFilename.
func (s *CodeService) Download(ctx context.Context, req qr.Request, style qr.Style) (string, error) {
	if req.Empty() {
		return "", ErrNothingToExport
	}
	if s.Saver == nil {
		return "", fmt.Errorf("file saver is not configured")
	}
	if _, err := style.WithSize(style.Size); err != nil {
		return "", err
	}

	data, err := s.Drawer.PNG(req.Content, style)
	if err != nil {
		return "", fmt.Errorf("rasterize: %w", err)
	}
	path, err := s.Saver.Save(ctx, DownloadFilename, data)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", DownloadFilename, err)
	}
	return path, nil
}
