// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// Clipboard is the system clipboard.
type Clipboard struct{}

// New creates a clipboard writer.
func New() *Clipboard {
	return &Clipboard{}
}

// Write copies text to the clipboard.
func (c *Clipboard) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
