// Package qrcode draws QR codes with go-qrcode.
package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/tesso57/qrgen/internal/domain/qr"
	"golang.org/x/image/draw"
)

// Level is the redundancy used for every code. Highest survives ~30% damage.
const Level = qrcode.Highest

// Drawer encodes content into module bitmaps and PNG images.
type Drawer struct{}

// NewDrawer creates a new drawer.
func NewDrawer() *Drawer {
	return &Drawer{}
}

// Bitmap returns the module matrix for content, quiet zone included.
// true means a dark module.
func (d *Drawer) Bitmap(content string) ([][]bool, error) {
	q, err := encode(content)
	if err != nil {
		return nil, err
	}
	return q.Bitmap(), nil
}

// PNG renders content as an exactly size x size PNG using the style colors.
// go-qrcode grows its own images past the requested size once the symbol
// has more modules than pixels, so the code is drawn at one pixel per
// module and scaled to the target.
func (d *Drawer) PNG(content string, style qr.Style) ([]byte, error) {
	q, err := encode(content)
	if err != nil {
		return nil, err
	}
	q.BackgroundColor = style.Background
	q.ForegroundColor = style.Foreground

	src := q.Image(-1)
	dst := image.NewRGBA(image.Rect(0, 0, style.Size, style.Size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func encode(content string) (*qrcode.QRCode, error) {
	q, err := qrcode.New(content, Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	q.DisableBorder = false
	return q, nil
}
