package usecase

import (
	"context"
	"errors"
)

// ErrNothingToCopy is returned when there is no text to copy.
var ErrNothingToCopy = errors.New("nothing to copy")

// ClipboardWriter abstracts the system clipboard.
type ClipboardWriter interface {
	Write(ctx context.Context, text string) error
}

// CopyService copies source text to the clipboard.
type CopyService struct {
	Clipboard ClipboardWriter
}

// NewCopyService constructs a CopyService.
func NewCopyService(cb ClipboardWriter) *CopyService {
	return &CopyService{Clipboard: cb}
}

// Copy writes text as-is. Empty text is rejected without touching the clipboard.
func (s *CopyService) Copy(ctx context.Context, text string) error {
	if text == "" {
		return ErrNothingToCopy
	}
	if s == nil || s.Clipboard == nil {
		return errors.New("clipboard is not configured")
	}
	return s.Clipboard.Write(ctx, text)
}
